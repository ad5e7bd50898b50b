// Package analyzer wires the loader, check batteries, impact assessor and
// aggregator into one analysis pipeline.
package analyzer

import (
	"context"
	"errors"
	"sync"

	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/dynamic"
	"github.com/raysh454/aria/internal/impact"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/loader"
	"github.com/raysh454/aria/internal/model"
)

// DefaultAnalyzer is the standard accessibility analysis engine. It holds no
// per-run state: every Analyze call is independent and leaks nothing between
// URLs.
type DefaultAnalyzer struct {
	cfg      *Config
	loader   interfaces.Loader
	assessor *impact.Assessor
	logger   interfaces.Logger
}

// NewDefaultAnalyzer constructs the engine. ldr may be nil, in which case a
// chromedp loader is built from cfg. Requires a non-nil logger.
func NewDefaultAnalyzer(cfg *Config, ldr interfaces.Loader, logger interfaces.Logger) (*DefaultAnalyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("analyzer: nil logger; please pass a valid interfaces.Logger")
	}
	l := logger.With(interfaces.Field{Key: "component", Value: "analyzer"})

	if ldr == nil {
		built, err := loader.New(cfg.Loader, logger)
		if err != nil {
			return nil, err
		}
		ldr = built
	}
	assessor, err := impact.New(logger)
	if err != nil {
		return nil, err
	}

	return &DefaultAnalyzer{
		cfg:      cfg,
		loader:   ldr,
		assessor: assessor,
		logger:   l,
	}, nil
}

// Analyze loads the page and runs the full battery. It returns either a
// complete report or a single fatal loader error, never a partial report.
// The live page handle is released on every exit path.
func (a *DefaultAnalyzer) Analyze(ctx context.Context, url string) (*model.AnalysisReport, error) {
	page, err := a.loader.Load(ctx, url)
	if err != nil {
		a.logger.Warn("page load failed",
			interfaces.Field{Key: "url", Value: url},
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil, err
	}
	defer page.Close()

	doc := page.Document()

	// The static and dynamic batteries have no data dependency; run them
	// concurrently. Page-context queries are serialized inside the Page.
	var (
		wg            sync.WaitGroup
		staticResults map[string]*model.CheckResult
		dynResults    map[string]*model.CheckResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		staticResults = checks.RunStatic(doc, a.logger)
	}()
	go func() {
		defer wg.Done()
		dynResults = dynamic.Run(ctx, page, a.logger)
	}()
	wg.Wait()

	merged := make(map[string]*model.CheckResult, len(staticResults)+len(dynResults))
	for name, cr := range staticResults {
		merged[name] = cr
	}
	for name, cr := range dynResults {
		merged[name] = cr
	}

	analyses := a.assessor.Assess(ctx, doc, page)

	report := Aggregate(page.Info(), merged, analyses)
	a.logger.Info("analysis complete",
		interfaces.Field{Key: "url", Value: url},
		interfaces.Field{Key: "total_issues", Value: report.Summary.TotalIssues},
		interfaces.Field{Key: "overall_score", Value: report.Summary.OverallScore})
	return report, nil
}

// Close releases resources held by the analyzer.
func (a *DefaultAnalyzer) Close() error {
	a.logger.Info("analyzer closed")
	return nil
}
