package interfaces

import (
	"context"

	"github.com/raysh454/aria/internal/model"
)

// Analyzer runs a full accessibility analysis of a single URL.
//
// This interface defines the contract for the analysis engine, allowing the
// server and CLI to depend on an abstraction rather than concrete types.
type Analyzer interface {
	// Analyze loads the page, runs every static and dynamic check plus the
	// four disability-category assessments, and returns one complete report.
	// It returns either a well-formed report or a single typed fatal error
	// (loader-level failure); never a partial report.
	Analyze(ctx context.Context, url string) (*model.AnalysisReport, error)

	// Close releases any resources held by the analyzer.
	Close() error
}

// Suggester maps issues to human-readable remediation text. Implementations
// must not fail: on any upstream fault they return a deterministic fallback
// suggestion instead.
type Suggester interface {
	// Suggest returns remediation guidance for a single issue.
	Suggest(ctx context.Context, issue model.Issue) model.Suggestion

	// SuggestBatch processes many issues, deduplicating by rule identifier
	// and appending at most one overall summary entry.
	SuggestBatch(ctx context.Context, report *model.AnalysisReport) []model.Suggestion

	// Close releases any resources held by the suggester.
	Close() error
}
