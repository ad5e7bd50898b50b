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

func (a *Assessor) motor(ctx context.Context, doc *goquery.Document, q dynamic.Querier) *model.DisabilityAnalysis {
	sc := newScorecard(model.CategoryMotor)

	removed := 0
	doc.Find(`a[href][tabindex="-1"], button[tabindex="-1"], input[tabindex="-1"], select[tabindex="-1"], textarea[tabindex="-1"]`).
		Each(func(_ int, el *goquery.Selection) {
			if _, disabled := el.Attr("disabled"); !disabled {
				removed++
			}
		})
	if removed > 0 {
		sc.add(rules.NewIssue(rules.KeyboardInaccessible, model.SeverityError,
			fmt.Sprintf("%d interactive elements are removed from the tab order", removed), "", ""),
			removed*rules.PenaltyKeyboardInaccessible)
	}

	if small := countSmallTargets(a.focusSamples(ctx, q)); small > 0 {
		sc.add(rules.NewIssue(rules.SmallClickTargets, model.SeverityWarning,
			fmt.Sprintf("%d click targets are smaller than %dx%dpx",
				small, rules.MinClickTargetPx, rules.MinClickTargetPx), "", ""),
			small*rules.PenaltySmallClickTarget)
	}

	if !hasSkipLink(doc) {
		sc.add(rules.NewIssue(rules.MissingSkipLinks, model.SeverityWarning,
			"no skip link to bypass repeated navigation", "", ""),
			rules.PenaltyMissingSkipLinks)
	}

	return sc.finish(motorRecommendations)
}

// countSmallTargets counts rendered clickable elements whose bounding box is
// under the minimum target size. Zero-area samples are elements the probe
// saw but the page never laid out; they are not counted.
func countSmallTargets(samples []dynamic.FocusSample) int {
	small := 0
	for _, s := range samples {
		if s.Width <= 0 || s.Height <= 0 {
			continue
		}
		if s.Width < rules.MinClickTargetPx || s.Height < rules.MinClickTargetPx {
			small++
		}
	}
	return small
}

func hasSkipLink(doc *goquery.Document) bool {
	found := false
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(a.Text()), "skip") {
			found = true
			return false
		}
		return true
	})
	return found
}
