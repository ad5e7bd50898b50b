package dynamic

import (
	"context"
	"fmt"

	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Keyboard flags focusable elements that expose no visible focus indicator:
// no non-none outline and no box-shadow/border change while focused.
func Keyboard(ctx context.Context, q Querier) (*model.CheckResult, error) {
	var samples []FocusSample
	if err := q.Eval(ctx, FocusProbeJS, &samples); err != nil {
		return nil, fmt.Errorf("focus probe: %w", err)
	}

	res := model.NewCheckResult(checks.CheckKeyboard)
	for _, s := range samples {
		if !s.Focusable() || s.Disabled {
			continue
		}
		res.Counters["total_focusable"]++

		if s.HasFocusIndicator {
			res.Passed++
			continue
		}
		res.AddIssue(rules.NewIssue(rules.NoFocusIndicator, model.SeverityWarning,
			"focusable element has no visible focus indicator",
			sampleLocation(s.ID), s.Tag))
	}
	return res, nil
}
