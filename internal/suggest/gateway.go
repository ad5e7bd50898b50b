package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

// SuggestionError reports a failed upstream suggestion attempt. It is never
// surfaced through the gateway API directly; the gateway logs it and falls
// back to a static suggestion.
type SuggestionError struct {
	Rule string
	Err  error
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("suggestion for rule %q: %v", e.Rule, e.Err)
}

func (e *SuggestionError) Unwrap() error { return e.Err }

// Gateway produces remediation suggestions for accessibility issues. It
// consults an upstream AI provider when configured and always degrades to a
// built-in suggestion table, so callers never receive an error.
type Gateway struct {
	cfg    Config
	client *http.Client
	cache  *Cache
	logger interfaces.Logger

	mu       sync.Mutex
	lastCall time.Time
}

// NewGateway constructs a Gateway. A non-nil logger is required. The sqlite
// suggestion cache is opened lazily from cfg.CachePath; cache open failures
// disable the cache but do not fail construction.
func NewGateway(cfg Config, logger interfaces.Logger) (*Gateway, error) {
	if logger == nil {
		return nil, errors.New("suggest: logger is required")
	}
	logger = logger.With(interfaces.Field{Key: "component", Value: "suggest"})

	g := &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}

	if cfg.CachePath != "" {
		cache, err := OpenCache(cfg.CachePath)
		if err != nil {
			logger.Warn("suggestion cache unavailable",
				interfaces.Field{Key: "path", Value: cfg.CachePath},
				interfaces.Field{Key: "error", Value: err.Error()})
		} else {
			g.cache = cache
		}
	}

	return g, nil
}

// Suggest returns a remediation suggestion for a single issue. The result is
// always usable: upstream failures and missing credentials select the static
// fallback for the issue's rule.
func (g *Gateway) Suggest(ctx context.Context, issue model.Issue) model.Suggestion {
	if !g.aiReady() {
		return fallbackFor(issue)
	}

	if g.cache != nil {
		if text, ok := g.cache.Get(ctx, issue.Rule, g.cfg.Model); ok {
			s := fallbackFor(issue)
			s.SuggestionText = text
			return s
		}
	}

	text, err := g.callUpstream(ctx, issuePrompt(issue))
	if err != nil {
		serr := &SuggestionError{Rule: issue.Rule, Err: err}
		g.logger.Warn("upstream suggestion failed, using fallback",
			interfaces.Field{Key: "rule", Value: issue.Rule},
			interfaces.Field{Key: "error", Value: serr.Error()})
		return fallbackFor(issue)
	}

	if g.cache != nil {
		g.cache.Put(ctx, issue.Rule, g.cfg.Model, text)
	}

	s := fallbackFor(issue)
	s.SuggestionText = text
	return s
}

// SuggestBatch produces at most one suggestion per distinct rule in the
// report, in first-occurrence order, followed by at most one overall summary
// suggestion. Upstream calls within the batch are spaced by MinInterval.
func (g *Gateway) SuggestBatch(ctx context.Context, report *model.AnalysisReport) []model.Suggestion {
	if report == nil {
		return nil
	}

	seen := make(map[string]bool, len(report.Issues))
	suggestions := make([]model.Suggestion, 0, len(report.Issues)+1)

	for _, issue := range report.Issues {
		if seen[issue.Rule] {
			continue
		}
		seen[issue.Rule] = true
		g.pace()
		suggestions = append(suggestions, g.Suggest(ctx, issue))
	}

	if len(report.Issues) > 0 {
		suggestions = append(suggestions, g.overall(ctx, report))
	}

	return suggestions
}

// Close releases the suggestion cache, if open.
func (g *Gateway) Close() error {
	if g.cache != nil {
		return g.cache.Close()
	}
	return nil
}

func (g *Gateway) aiReady() bool {
	return g.cfg.AIEnabled && g.cfg.APIKey != ""
}

// pace enforces MinInterval between consecutive upstream calls. It is a no-op
// when AI is disabled, since fallback lookups are local.
func (g *Gateway) pace() {
	if !g.aiReady() || g.cfg.MinInterval <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	elapsed := time.Since(g.lastCall)
	if elapsed < g.cfg.MinInterval {
		time.Sleep(g.cfg.MinInterval - elapsed)
	}
	g.lastCall = time.Now()
}

// overall produces the single report-level summary suggestion.
func (g *Gateway) overall(ctx context.Context, report *model.AnalysisReport) model.Suggestion {
	s := overallFallback(report)

	if g.aiReady() {
		text, err := g.callUpstream(ctx, overallPrompt(report))
		if err != nil {
			g.logger.Warn("upstream overall suggestion failed, using fallback",
				interfaces.Field{Key: "error", Value: err.Error()})
		} else {
			s.SuggestionText = text
		}
	}

	return s
}
