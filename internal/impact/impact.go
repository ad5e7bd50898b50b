// Package impact implements the four disability-category evaluators. Each
// category combines static markup signals with its own live-page queries and
// produces a DisabilityAnalysis: a 0-100 score decremented by rule-specific
// penalties, the issues behind the decrements, and a fixed recommendation
// list once the score drops below the threshold.
package impact

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/dynamic"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Assessor evaluates all four disability categories. State-free: safe for
// concurrent use across analysis runs.
type Assessor struct {
	logger interfaces.Logger
}

// New constructs an Assessor. Requires a non-nil logger.
func New(logger interfaces.Logger) (*Assessor, error) {
	if logger == nil {
		return nil, errors.New("impact: nil logger; please pass a valid interfaces.Logger")
	}
	return &Assessor{
		logger: logger.With(interfaces.Field{Key: "component", Value: "impact-assessor"}),
	}, nil
}

type categoryFunc func(ctx context.Context, doc *goquery.Document, q dynamic.Querier) *model.DisabilityAnalysis

// Assess runs every category evaluator. The categories have no data
// dependency on each other and run concurrently; page-context queries are
// serialized by the Querier. The returned map always holds all four
// categories; a category that faults internally degrades to its baseline
// analysis rather than going missing.
func (a *Assessor) Assess(ctx context.Context, doc *goquery.Document, q dynamic.Querier) map[model.Category]*model.DisabilityAnalysis {
	cats := map[model.Category]categoryFunc{
		model.CategoryVisual:    a.visual,
		model.CategoryAuditory:  a.auditory,
		model.CategoryMotor:     a.motor,
		model.CategoryCognitive: a.cognitive,
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	out := make(map[model.Category]*model.DisabilityAnalysis, len(cats))

	for cat, fn := range cats {
		wg.Add(1)
		go func(cat model.Category, fn categoryFunc) {
			defer wg.Done()
			res := a.runCategory(ctx, cat, fn, doc, q)
			mu.Lock()
			out[cat] = res
			mu.Unlock()
		}(cat, fn)
	}
	wg.Wait()
	return out
}

func (a *Assessor) runCategory(ctx context.Context, cat model.Category, fn categoryFunc, doc *goquery.Document, q dynamic.Querier) (res *model.DisabilityAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("category assessment failed, substituting baseline",
				interfaces.Field{Key: "category", Value: string(cat)},
				interfaces.Field{Key: "error", Value: fmt.Sprintf("%v", r)})
			res = newScorecard(cat).finish(nil)
		}
	}()
	return fn(ctx, doc, q)
}

// scorecard accumulates penalties for one category. Scores start at 100 and
// floor at 0.
type scorecard struct {
	category model.Category
	issues   []model.Issue
	penalty  int
}

func newScorecard(cat model.Category) *scorecard {
	return &scorecard{category: cat}
}

// add records an issue and its penalty.
func (s *scorecard) add(iss model.Issue, penalty int) {
	s.issues = append(s.issues, iss)
	s.penalty += penalty
}

// finish computes the floored score and attaches recommendations when the
// score falls below the threshold.
func (s *scorecard) finish(recommendations []string) *model.DisabilityAnalysis {
	score := 100 - s.penalty
	if score < 0 {
		score = 0
	}
	da := &model.DisabilityAnalysis{
		Category: s.category,
		Issues:   s.issues,
		Score:    score,
	}
	if da.Issues == nil {
		da.Issues = []model.Issue{}
	}
	if score < rules.RecommendationThreshold {
		da.Recommendations = recommendations
	}
	return da
}

// focusSamples runs the shared focus probe, tolerating a nil or failing
// querier: categories then simply skip their dynamic signals.
func (a *Assessor) focusSamples(ctx context.Context, q dynamic.Querier) []dynamic.FocusSample {
	if q == nil {
		return nil
	}
	var samples []dynamic.FocusSample
	if err := q.Eval(ctx, dynamic.FocusProbeJS, &samples); err != nil {
		a.logger.Warn("focus probe failed, skipping dynamic signals",
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}
	return samples
}
