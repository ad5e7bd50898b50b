package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FailureCategory is a human-readable cause bucket surfaced with fatal
// loader errors.
type FailureCategory string

const (
	CategoryDNS        FailureCategory = "dns_failure"
	CategoryRefused    FailureCategory = "connection_refused"
	CategoryTimeout    FailureCategory = "navigation_timeout"
	CategoryParse      FailureCategory = "parse_failure"
	CategoryNavigation FailureCategory = "navigation_failure"
)

// NavigationError means the page was unreachable or did not load within the
// configured timeout. It is fatal: the analysis run is aborted and no report
// is produced.
type NavigationError struct {
	URL      string
	Category FailureCategory
	Err      error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation failed for %s (%s): %v", e.URL, e.Category, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ContentExtractionError means the rendered document could not be serialized
// or parsed, even after the aggressive sanitization retry. Fatal.
type ContentExtractionError struct {
	URL string
	Err error
}

func (e *ContentExtractionError) Error() string {
	return fmt.Sprintf("content extraction failed for %s: %v", e.URL, e.Err)
}

func (e *ContentExtractionError) Unwrap() error { return e.Err }

// classifyNavigation buckets a raw chromedp/network error into a
// FailureCategory. Chromedp surfaces net-stack failures as string-y errors
// ("net::ERR_NAME_NOT_RESOLVED" etc.), so matching on substrings is the
// practical option here.
func classifyNavigation(err error) FailureCategory {
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "err_name_not_resolved"),
		strings.Contains(msg, "no such host"):
		return CategoryDNS
	case strings.Contains(msg, "err_connection_refused"),
		strings.Contains(msg, "connection refused"):
		return CategoryRefused
	case strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "err_timed_out"):
		return CategoryTimeout
	default:
		return CategoryNavigation
	}
}
