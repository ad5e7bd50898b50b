// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements interfaces.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...interfaces.Field) interfaces.Logger { return l }

// ─── Page ──────────────────────────────────────────────────────────────

// DummyPage implements interfaces.Page over a static HTML string.
// EvalResults maps a probe expression to the JSON payload Eval unmarshals
// into out; expressions with no entry return EvalErr (or decode "[]").
type DummyPage struct {
	PageURL     string
	PageInfo    model.PageInfo
	HTML        string
	EvalResults map[string]string
	EvalErr     error

	Closed bool

	doc     *goquery.Document
	docOnce sync.Once
}

func (p *DummyPage) URL() string { return p.PageURL }

func (p *DummyPage) Info() model.PageInfo { return p.PageInfo }

func (p *DummyPage) Document() *goquery.Document {
	p.docOnce.Do(func() {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
		if err != nil {
			doc, _ = goquery.NewDocumentFromReader(strings.NewReader("<html></html>"))
		}
		p.doc = doc
	})
	return p.doc
}

func (p *DummyPage) Eval(ctx context.Context, expression string, out any) error {
	if payload, ok := p.EvalResults[expression]; ok {
		return json.Unmarshal([]byte(payload), out)
	}
	if p.EvalErr != nil {
		return p.EvalErr
	}
	return json.Unmarshal([]byte("[]"), out)
}

func (p *DummyPage) Close() { p.Closed = true }

// ─── Loader ────────────────────────────────────────────────────────────

// DummyLoader implements interfaces.Loader.
// Pages maps a URL to the page Load returns; FailURLs forces errors.
type DummyLoader struct {
	Pages     map[string]*DummyPage
	FailURLs  map[string]error
	LoadDelay time.Duration

	mu     sync.Mutex
	Loaded []string
}

func (d *DummyLoader) Load(ctx context.Context, url string) (interfaces.Page, error) {
	if d.LoadDelay > 0 {
		select {
		case <-time.After(d.LoadDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	d.mu.Lock()
	d.Loaded = append(d.Loaded, url)
	d.mu.Unlock()

	if err, ok := d.FailURLs[url]; ok {
		return nil, err
	}
	if page, ok := d.Pages[url]; ok {
		page.PageURL = url
		return page, nil
	}
	return nil, &errString{"no dummy page for " + url}
}

// ─── Analyzer ──────────────────────────────────────────────────────────

// DummyAnalyzer implements interfaces.Analyzer with a preconfigured result.
type DummyAnalyzer struct {
	Report *model.AnalysisReport
	Err    error
	Delay  time.Duration

	mu       sync.Mutex
	Analyzed []string
}

func (d *DummyAnalyzer) Analyze(ctx context.Context, url string) (*model.AnalysisReport, error) {
	if d.Delay > 0 {
		select {
		case <-time.After(d.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	d.mu.Lock()
	d.Analyzed = append(d.Analyzed, url)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}
	if d.Report != nil {
		return d.Report, nil
	}
	return &model.AnalysisReport{
		PageInfo: model.PageInfo{URL: url},
		Summary:  model.Summary{WCAGLevel: model.WCAGLevelAA, OverallScore: 100},
	}, nil
}

func (d *DummyAnalyzer) Close() error { return nil }

// ─── Suggester ─────────────────────────────────────────────────────────

// DummySuggester implements interfaces.Suggester returning canned text.
type DummySuggester struct {
	Text string

	mu      sync.Mutex
	Batches []*model.AnalysisReport
}

func (d *DummySuggester) Suggest(_ context.Context, issue model.Issue) model.Suggestion {
	return model.Suggestion{
		IssueType:      issue.Rule,
		IssueMessage:   issue.Message,
		SuggestionText: d.text(),
		Priority:       model.PriorityMedium,
	}
}

func (d *DummySuggester) SuggestBatch(ctx context.Context, report *model.AnalysisReport) []model.Suggestion {
	d.mu.Lock()
	d.Batches = append(d.Batches, report)
	d.mu.Unlock()

	seen := map[string]bool{}
	var out []model.Suggestion
	for _, issue := range report.Issues {
		if seen[issue.Rule] {
			continue
		}
		seen[issue.Rule] = true
		out = append(out, d.Suggest(ctx, issue))
	}
	return out
}

func (d *DummySuggester) Close() error { return nil }

func (d *DummySuggester) text() string {
	if d.Text != "" {
		return d.Text
	}
	return "dummy suggestion"
}

// ─── helpers ───────────────────────────────────────────────────────────

type errString struct{ s string }

func (e *errString) Error() string { return e.s }
