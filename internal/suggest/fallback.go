package suggest

import (
	"fmt"
	"strings"

	"github.com/raysh454/aria/internal/model"
)

// fallbackEntry describes a static remediation template matched against the
// rule identifier by substring.
type fallbackEntry struct {
	keywords []string
	text     string
	fixTime  string
}

var fallbackTable = []fallbackEntry{
	{
		keywords: []string{"alt"},
		text: "Add descriptive alt text to the image. Describe the content and " +
			"function of the image in a short phrase; use alt=\"\" only for " +
			"purely decorative images.",
		fixTime: "5-10 minutes",
	},
	{
		keywords: []string{"label"},
		text: "Associate every form control with a visible label. Use a <label> " +
			"element with a matching for attribute, or aria-label when a visible " +
			"label is not feasible.",
		fixTime: "10-20 minutes",
	},
	{
		keywords: []string{"contrast", "color"},
		text: "Increase the contrast between text and its background to at least " +
			"4.5:1 for normal text and 3:1 for large text. Adjust foreground or " +
			"background colors rather than relying on font weight.",
		fixTime: "15-30 minutes",
	},
}

var genericFallback = fallbackEntry{
	text: "Review this element against the relevant WCAG success criterion and " +
		"adjust the markup or styling so assistive technologies can present it " +
		"correctly.",
	fixTime: "varies",
}

// fallbackFor selects a static suggestion for the issue. Priority follows the
// issue severity: errors are high priority, everything else medium.
func fallbackFor(issue model.Issue) model.Suggestion {
	entry := matchFallback(issue.Rule)

	return model.Suggestion{
		IssueType:        issue.Rule,
		IssueMessage:     issue.Message,
		SuggestionText:   entry.text,
		Priority:         priorityFor(issue.Severity),
		EstimatedFixTime: entry.fixTime,
	}
}

func matchFallback(rule string) fallbackEntry {
	rule = strings.ToLower(rule)
	for _, candidate := range fallbackTable {
		for _, kw := range candidate.keywords {
			if strings.Contains(rule, kw) {
				return candidate
			}
		}
	}
	return genericFallback
}

func priorityFor(sev model.Severity) string {
	if sev == model.SeverityError {
		return model.PriorityHigh
	}
	return model.PriorityMedium
}

// overallFallback builds the report-level summary suggestion from the
// aggregate counts alone.
func overallFallback(report *model.AnalysisReport) model.Suggestion {
	s := report.Summary
	priority := model.PriorityMedium
	if s.CriticalIssues > 0 {
		priority = model.PriorityHigh
	}

	return model.Suggestion{
		IssueType:    "overall",
		IssueMessage: fmt.Sprintf("%d issues found (%d critical, %d warnings)", s.TotalIssues, s.CriticalIssues, s.WarningIssues),
		SuggestionText: fmt.Sprintf(
			"The page scored %d/100. Fix the %d critical issues first, since each "+
				"blocks WCAG AA conformance, then work through the %d warnings in "+
				"order of user impact.",
			s.OverallScore, s.CriticalIssues, s.WarningIssues),
		Priority:         priority,
		EstimatedFixTime: "varies",
		IsOverall:        true,
	}
}
