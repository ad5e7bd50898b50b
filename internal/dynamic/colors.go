package dynamic

import (
	"context"
	"fmt"

	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Colors computes the WCAG contrast ratio for every sampled text element and
// flags pairs below the AA threshold (4.5:1 normal, 3:1 large text).
// Identical white-on-white pairs are the degenerate 1:1 case and fall out of
// the same math. Elements whose computed colors cannot be resolved to opaque
// values are skipped rather than guessed.
func Colors(ctx context.Context, q Querier) (*model.CheckResult, error) {
	var samples []ColorSample
	if err := q.Eval(ctx, ColorProbeJS, &samples); err != nil {
		return nil, fmt.Errorf("color probe: %w", err)
	}

	res := model.NewCheckResult(checks.CheckColors)
	for _, s := range samples {
		fg, err := parseCSSColor(s.Foreground)
		if err != nil || fg.A < 1 {
			continue
		}
		bg, err := parseCSSColor(s.Background)
		if err != nil || bg.A < 1 {
			continue
		}
		res.Counters["total_text_elements"]++

		ratio := contrastRatio(fg, bg)
		required := requiredRatio(s.FontSize, s.FontWeight)
		if ratio < required {
			res.AddIssue(rules.NewIssue(rules.LowContrast, model.SeverityError,
				fmt.Sprintf("text contrast %.2f:1 is below the required %.1f:1", ratio, required),
				sampleLocation(s.ID), s.Tag))
			continue
		}
		res.Passed++
	}
	return res, nil
}
