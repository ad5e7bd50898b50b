package rules

import "github.com/raysh454/aria/internal/model"

// Rule identifiers. These are stable string keys used to correlate issues
// with remediation guidance in the UI and suggestion gateway; never rename
// without migrating both.
const (
	// Static markup checks
	MissingAltText   = "missingAltText"
	EmptyAltText     = "emptyAltText"
	HeadingHierarchy = "headingHierarchy"
	MissingH1        = "missingH1"
	MissingLabel     = "missingLabel"
	EmptyLinkText    = "emptyLinkText"
	VagueLinkText    = "vagueLinkText"
	MissingMain      = "missingMain"

	// ARIA checks
	InvalidAriaRole     = "invalidAriaRole"
	AriaHiddenFocusable = "ariaHiddenFocusable"
	DanglingAriaRef     = "danglingAriaReference"

	// Dynamic page checks
	LowContrast      = "lowContrast"
	NoFocusIndicator = "noFocusIndicator"

	// Disability-impact rules
	MissingLandmarks     = "missingLandmarks"
	PreventZoom          = "preventZoom"
	MissingCaptions      = "missingCaptions"
	AutoplayAudio        = "autoplayAudio"
	MissingTranscripts   = "missingTranscripts"
	KeyboardInaccessible = "keyboardInaccessible"
	SmallClickTargets    = "smallClickTargets"
	MissingSkipLinks     = "missingSkipLinks"
	MissingFormHelp      = "missingFormHelp"
	SessionTimeouts      = "sessionTimeouts"
	MovingContent        = "movingContent"
	ComplexLanguage      = "complexLanguage"
)

// wcagRefs maps rule identifiers to the WCAG 2.1 success criterion they
// relate to. Rules without a crisp single criterion are left out; their
// issues simply carry no reference.
var wcagRefs = map[string]model.WCAGRef{
	MissingAltText:       {Guideline: "1.1.1", Level: "A", Description: "Non-text Content"},
	EmptyAltText:         {Guideline: "1.1.1", Level: "A", Description: "Non-text Content"},
	HeadingHierarchy:     {Guideline: "1.3.1", Level: "A", Description: "Info and Relationships"},
	MissingH1:            {Guideline: "1.3.1", Level: "A", Description: "Info and Relationships"},
	MissingLabel:         {Guideline: "3.3.2", Level: "A", Description: "Labels or Instructions"},
	EmptyLinkText:        {Guideline: "2.4.4", Level: "A", Description: "Link Purpose (In Context)"},
	VagueLinkText:        {Guideline: "2.4.4", Level: "A", Description: "Link Purpose (In Context)"},
	MissingMain:          {Guideline: "1.3.1", Level: "A", Description: "Info and Relationships"},
	InvalidAriaRole:      {Guideline: "4.1.2", Level: "A", Description: "Name, Role, Value"},
	AriaHiddenFocusable:  {Guideline: "4.1.2", Level: "A", Description: "Name, Role, Value"},
	DanglingAriaRef:      {Guideline: "1.3.1", Level: "A", Description: "Info and Relationships"},
	LowContrast:          {Guideline: "1.4.3", Level: "AA", Description: "Contrast (Minimum)"},
	NoFocusIndicator:     {Guideline: "2.4.7", Level: "AA", Description: "Focus Visible"},
	MissingLandmarks:     {Guideline: "1.3.1", Level: "A", Description: "Info and Relationships"},
	PreventZoom:          {Guideline: "1.4.4", Level: "AA", Description: "Resize Text"},
	MissingCaptions:      {Guideline: "1.2.2", Level: "A", Description: "Captions (Prerecorded)"},
	AutoplayAudio:        {Guideline: "1.4.2", Level: "A", Description: "Audio Control"},
	MissingTranscripts:   {Guideline: "1.2.1", Level: "A", Description: "Audio-only and Video-only"},
	KeyboardInaccessible: {Guideline: "2.1.1", Level: "A", Description: "Keyboard"},
	SmallClickTargets:    {Guideline: "2.5.5", Level: "AAA", Description: "Target Size"},
	MissingSkipLinks:     {Guideline: "2.4.1", Level: "A", Description: "Bypass Blocks"},
	MissingFormHelp:      {Guideline: "3.3.2", Level: "A", Description: "Labels or Instructions"},
	SessionTimeouts:      {Guideline: "2.2.1", Level: "A", Description: "Timing Adjustable"},
	MovingContent:        {Guideline: "2.2.2", Level: "A", Description: "Pause, Stop, Hide"},
	ComplexLanguage:      {Guideline: "3.1.5", Level: "AAA", Description: "Reading Level"},
}

// WCAG returns the WCAG reference for a rule id, or nil when the rule has no
// single mapped criterion.
func WCAG(rule string) *model.WCAGRef {
	if ref, ok := wcagRefs[rule]; ok {
		// Return a copy; issues are immutable and must not share state.
		r := ref
		return &r
	}
	return nil
}

// NewIssue builds an Issue for a registered rule with its WCAG reference
// attached. location and element may be empty.
func NewIssue(rule string, sev model.Severity, message, location, element string) model.Issue {
	return model.Issue{
		Severity: sev,
		Rule:     rule,
		Message:  message,
		Location: location,
		Element:  element,
		WCAG:     WCAG(rule),
	}
}
