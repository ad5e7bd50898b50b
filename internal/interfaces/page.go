package interfaces

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
)

// Page is a loaded page under analysis: the sanitized static document plus a
// handle to the live rendered page for computed-style and geometry queries.
//
// A Page is exclusively owned by the analysis run that created it. Close MUST
// be called exactly once on every exit path; implementations make Close
// idempotent so deferred cleanup is safe.
type Page interface {
	// URL returns the URL the page was loaded from.
	URL() string

	// Info returns extracted page metadata (title, lang, viewport meta).
	Info() model.PageInfo

	// Document returns the parsed, sanitized static markup.
	Document() *goquery.Document

	// Eval evaluates a self-contained JavaScript expression in the live page
	// and unmarshals its JSON result into out. Implementations serialize
	// concurrent calls so page-context queries never race.
	Eval(ctx context.Context, expression string, out any) error

	// Close releases the live page handle. Safe to call more than once.
	Close()
}

// Loader drives a headless browser to a URL and produces a Page.
//
// Load fails with a loader.NavigationError when the resource cannot be
// fetched within the configured timeout, or a loader.ContentExtractionError
// when the rendered document cannot be serialized or parsed.
type Loader interface {
	Load(ctx context.Context, url string) (Page, error)
}
