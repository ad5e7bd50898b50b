package rules

// Penalty weights applied by the disability-impact assessors. Each category
// score starts at 100, subtracts the penalty per detected instance (unless
// noted otherwise) and floors at 0. These are heuristic and can be tuned
// over time.
const (
	PenaltyMissingLandmarks     = 15 // once, when no landmark exists at all
	PenaltyNoFocusIndicator     = 2  // per element, capped at FocusPenaltyCap
	PenaltyPreventZoom          = 25 // once
	PenaltyMissingAltText       = 5  // per image
	PenaltyMissingCaptions      = 20 // per video
	PenaltyAutoplayAudio        = 15 // once
	PenaltyMissingTranscripts   = 10 // once
	PenaltyKeyboardInaccessible = 10 // per element
	PenaltySmallClickTarget     = 5  // per element
	PenaltyMissingSkipLinks     = 10 // once
	PenaltyMissingFormHelp      = 10 // per form
	PenaltySessionTimeouts      = 10 // once
	PenaltyMovingContent        = 15 // once
	PenaltyComplexLanguage      = 5  // once

	// FocusPenaltyCap bounds the cumulative focus-indicator penalty so one
	// unstyled stylesheet cannot zero the visual score on its own.
	FocusPenaltyCap = 20
)

// Thresholds used by the checks. Named here rather than inlined so they are
// independently testable and tunable.
const (
	// MinClickTargetPx is the minimum side of a comfortable click target.
	MinClickTargetPx = 44

	// MaxWordsPerSentence is the readability ceiling for average sentence
	// length before the cognitive check flags complex language.
	MaxWordsPerSentence = 20

	// ContrastNormalText and ContrastLargeText are the WCAG AA minimum
	// contrast ratios.
	ContrastNormalText = 4.5
	ContrastLargeText  = 3.0

	// LargeTextMinPx and LargeTextBoldMinPx define "large text" for contrast
	// purposes (18pt, or 14pt bold, at 96dpi).
	LargeTextMinPx     = 24.0
	LargeTextBoldMinPx = 18.66

	// RecommendationThreshold is the category score below which the fixed
	// recommendation list is attached.
	RecommendationThreshold = 80
)

// Overall summary weights: one critical issue costs 10 points, one warning 5.
const (
	OverallCriticalWeight = 10
	OverallWarningWeight  = 5
)
