package impact

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/dynamic"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

func (a *Assessor) auditory(ctx context.Context, doc *goquery.Document, q dynamic.Querier) *model.DisabilityAnalysis {
	sc := newScorecard(model.CategoryAuditory)

	uncaptioned := 0
	doc.Find("video").Each(func(_ int, v *goquery.Selection) {
		if v.Find(`track[kind="captions"], track[kind="subtitles"]`).Length() == 0 {
			uncaptioned++
		}
	})
	if uncaptioned > 0 {
		sc.add(rules.NewIssue(rules.MissingCaptions, model.SeverityError,
			fmt.Sprintf("%d videos have no caption or subtitle track", uncaptioned), "", "video"),
			uncaptioned*rules.PenaltyMissingCaptions)
	}

	if doc.Find("audio[autoplay]").Length() > 0 {
		sc.add(rules.NewIssue(rules.AutoplayAudio, model.SeverityWarning,
			"audio starts playing automatically", "", "audio"),
			rules.PenaltyAutoplayAudio)
	}

	if doc.Find("audio").Length() > 0 &&
		doc.Find(`.transcript, [data-transcript]`).Length() == 0 {
		sc.add(rules.NewIssue(rules.MissingTranscripts, model.SeverityWarning,
			"audio content has no nearby transcript", "", "audio"),
			rules.PenaltyMissingTranscripts)
	}

	return sc.finish(auditoryRecommendations)
}
