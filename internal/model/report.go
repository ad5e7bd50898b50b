package model

import "time"

// Severity is the impact bucket of a single issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// WCAGRef points an issue at the WCAG 2.1 guideline it relates to.
type WCAGRef struct {
	// Guideline is the success criterion id, e.g. "1.1.1".
	Guideline string `json:"guideline"`

	// Level is the conformance level of the criterion: "A", "AA" or "AAA".
	Level string `json:"level"`

	// Description is the short criterion name, e.g. "Non-text Content".
	Description string `json:"description"`
}

// Issue is one detected accessibility failure. Issues are immutable once
// created; Rule is always drawn from the fixed registry in internal/rules so
// downstream consumers can map it to static guidance.
type Issue struct {
	// Severity is "error", "warning" or "info".
	Severity Severity `json:"severity"`

	// Rule is the stable rule identifier, e.g. "missingAltText".
	Rule string `json:"rule"`

	// Message is a short human-readable explanation of the failure.
	Message string `json:"message"`

	// Location optionally pins the issue to a URL, selector or element id.
	Location string `json:"location,omitempty"`

	// Element is the tag name of the offending element, if any.
	Element string `json:"element,omitempty"`

	// WCAG references the related guideline when the rule maps to one.
	WCAG *WCAGRef `json:"wcag,omitempty"`
}

// CheckResult is the outcome of one named check over a page. Created fresh
// per analysis run and never mutated after the check completes. A failing
// check yields an empty-but-valid CheckResult rather than aborting the run.
type CheckResult struct {
	// Check is the check name ("images", "headings", ...).
	Check string `json:"check"`

	// Issues are the failures found, in document order.
	Issues []Issue `json:"issues"`

	// Counters holds check-specific counts, e.g. "total_images": 12.
	Counters map[string]int `json:"counters,omitempty"`

	// Passed counts the elements that satisfied the check's rules.
	Passed int `json:"passed"`
}

// NewCheckResult returns an empty, well-formed result for a check.
func NewCheckResult(check string) *CheckResult {
	return &CheckResult{
		Check:    check,
		Issues:   []Issue{},
		Counters: map[string]int{},
	}
}

// AddIssue appends an issue to the result.
func (cr *CheckResult) AddIssue(iss Issue) {
	cr.Issues = append(cr.Issues, iss)
}

// Category is one disability grouping lens applied over the page signals.
type Category string

const (
	CategoryVisual    Category = "visual"
	CategoryAuditory  Category = "auditory"
	CategoryMotor     Category = "motor"
	CategoryCognitive Category = "cognitive"
)

// Categories lists all disability categories in their fixed report order.
func Categories() []Category {
	return []Category{CategoryVisual, CategoryAuditory, CategoryMotor, CategoryCognitive}
}

// DisabilityAnalysis is the per-category assessment. The score starts at 100,
// is decremented by rule-specific penalties and floors at 0. Recommendations
// are populated only when the score drops below the recommendation threshold.
type DisabilityAnalysis struct {
	Category        Category `json:"category"`
	Issues          []Issue  `json:"issues"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// PageInfo carries metadata extracted from the loaded page.
type PageInfo struct {
	URL             string    `json:"url"`
	Title           string    `json:"title"`
	HasLang         bool      `json:"has_lang_attribute"`
	HasViewportMeta bool      `json:"has_viewport_meta"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// Summary is the aggregate view over every check and category.
type Summary struct {
	TotalIssues    int `json:"total_issues"`
	CriticalIssues int `json:"critical_issues"`
	WarningIssues  int `json:"warning_issues"`
	PassedChecks   int `json:"passed_checks"`

	// WCAGLevel is "AA" when no error-severity issue was found,
	// "Non-compliant" otherwise.
	WCAGLevel string `json:"wcag_level"`

	// OverallScore = max(0, 100 - 10*critical - 5*warning).
	OverallScore int `json:"overall_score"`
}

const (
	WCAGLevelAA           = "AA"
	WCAGLevelNonCompliant = "Non-compliant"
)

// AnalysisReport is the root aggregate produced once per analysis
// invocation. It is immutable after return and owned exclusively by the
// caller; no state is shared or cached across analyses.
type AnalysisReport struct {
	PageInfo PageInfo `json:"page_info"`

	// Checks maps check name to its result. Every registered check is
	// present, even when it found nothing.
	Checks map[string]*CheckResult `json:"checks"`

	// DisabilityAnalysis maps category to its assessment. All four
	// categories are always present.
	DisabilityAnalysis map[Category]*DisabilityAnalysis `json:"disability_analysis"`

	// Issues flattens every issue from checks then categories, preserving
	// encounter order. Duplication across checks and disability issues is
	// expected and not deduplicated.
	Issues []Issue `json:"issues"`

	Summary Summary `json:"summary"`
}
