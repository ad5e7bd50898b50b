package impact

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/dynamic"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

const landmarkSelector = `main, nav, header, footer, [role="main"], [role="navigation"], [role="banner"], [role="contentinfo"]`

func (a *Assessor) visual(ctx context.Context, doc *goquery.Document, q dynamic.Querier) *model.DisabilityAnalysis {
	sc := newScorecard(model.CategoryVisual)

	if doc.Find(landmarkSelector).Length() == 0 {
		sc.add(rules.NewIssue(rules.MissingLandmarks, model.SeverityWarning,
			"no landmark regions found; screen reader users cannot jump between page areas", "", ""),
			rules.PenaltyMissingLandmarks)
	}

	if missing := countMissingFocusIndicators(a.focusSamples(ctx, q)); missing > 0 {
		penalty := missing * rules.PenaltyNoFocusIndicator
		if penalty > rules.FocusPenaltyCap {
			penalty = rules.FocusPenaltyCap
		}
		sc.add(rules.NewIssue(rules.NoFocusIndicator, model.SeverityWarning,
			fmt.Sprintf("%d focusable elements have no visible focus indicator", missing), "", ""),
			penalty)
	}

	if viewportPreventsZoom(doc) {
		sc.add(rules.NewIssue(rules.PreventZoom, model.SeverityError,
			"viewport meta disables pinch zoom (user-scalable=no)", "", "meta"),
			rules.PenaltyPreventZoom)
	}

	if n := doc.Find("img:not([alt])").Length(); n > 0 {
		sc.add(rules.NewIssue(rules.MissingAltText, model.SeverityError,
			fmt.Sprintf("%d images have no alternative text", n), "", "img"),
			n*rules.PenaltyMissingAltText)
	}

	return sc.finish(visualRecommendations)
}

func countMissingFocusIndicators(samples []dynamic.FocusSample) int {
	missing := 0
	for _, s := range samples {
		if s.Focusable() && !s.Disabled && !s.HasFocusIndicator {
			missing++
		}
	}
	return missing
}

func viewportPreventsZoom(doc *goquery.Document) bool {
	content, ok := doc.Find(`meta[name="viewport"]`).Attr("content")
	if !ok {
		return false
	}
	content = strings.ReplaceAll(strings.ToLower(content), " ", "")
	return strings.Contains(content, "user-scalable=no") || strings.Contains(content, "user-scalable=0")
}
