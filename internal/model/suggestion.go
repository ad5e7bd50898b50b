package model

// Priority buckets for suggestions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Suggestion is one remediation entry produced by the suggestion gateway,
// either AI-generated or taken from the static fallback table.
type Suggestion struct {
	// IssueType is the rule identifier the suggestion addresses.
	IssueType string `json:"issue_type"`

	// IssueMessage is the message of the issue the suggestion was built for.
	IssueMessage string `json:"issue_message,omitempty"`

	// SuggestionText is the remediation guidance.
	SuggestionText string `json:"suggestion_text"`

	// Priority is "high" or "medium".
	Priority string `json:"priority"`

	// EstimatedFixTime is a free-text range, e.g. "15-60 minutes".
	EstimatedFixTime string `json:"estimated_fix_time"`

	// IsOverall marks the single whole-report summary entry.
	IsOverall bool `json:"is_overall,omitempty"`
}
