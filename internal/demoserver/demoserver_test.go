package demoserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// TestGetAllPages verifies the fixture set covers the documented paths
func TestGetAllPages(t *testing.T) {
	t.Parallel()

	pages := GetAllPages()
	byPath := make(map[string]PageDefinition, len(pages))
	for _, p := range pages {
		if p.Description == "" {
			t.Errorf("fixture %s has no description", p.Path)
		}
		byPath[p.Path] = p
	}

	for _, path := range []string{"/accessible", "/broken", "/forms", "/media"} {
		if _, ok := byPath[path]; !ok {
			t.Errorf("missing fixture %s", path)
		}
	}
}

// TestFixturesParse verifies every fixture is well-formed HTML with a title
func TestFixturesParse(t *testing.T) {
	t.Parallel()

	for _, p := range GetAllPages() {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
		if err != nil {
			t.Errorf("fixture %s does not parse: %v", p.Path, err)
			continue
		}
		if doc.Find("title").Length() == 0 {
			t.Errorf("fixture %s has no title element", p.Path)
		}
	}
}

// TestFixtureProperties verifies fixtures keep their documented defects
func TestFixtureProperties(t *testing.T) {
	t.Parallel()

	pages := make(map[string]PageDefinition)
	for _, p := range GetAllPages() {
		pages[p.Path] = p
	}

	parse := func(html string) *goquery.Document {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			t.Fatalf("parse fixture: %v", err)
		}
		return doc
	}

	// The clean fixture: lang attribute, all images have alt, all inputs labeled
	accessible := parse(pages["/accessible"].HTML)
	if _, ok := accessible.Find("html").Attr("lang"); !ok {
		t.Error("/accessible must declare a lang attribute")
	}
	accessible.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("alt"); !ok {
			t.Error("/accessible must not contain images without alt")
		}
	})

	// The broken fixture: missing-alt images, heading skip, invalid role
	broken := parse(pages["/broken"].HTML)
	missingAlt := 0
	broken.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("alt"); !ok {
			missingAlt++
		}
	})
	if missingAlt == 0 {
		t.Error("/broken must contain images without alt")
	}
	if broken.Find("h4").Length() == 0 || broken.Find("h3").Length() != 0 {
		t.Error("/broken must skip from h2 to h4")
	}
	if broken.Find(`[role="banana"]`).Length() == 0 {
		t.Error("/broken must carry an invalid ARIA role")
	}

	// The forms fixture: at least one unlabeled control
	forms := parse(pages["/forms"].HTML)
	unlabeled := false
	forms.Find("input").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if _, hasAria := s.Attr("aria-label"); hasAria {
			return
		}
		if id == "" || forms.Find(`label[for="`+id+`"]`).Length() == 0 {
			if s.ParentsFiltered("label").Length() == 0 {
				unlabeled = true
			}
		}
	})
	if !unlabeled {
		t.Error("/forms must contain an unlabeled input")
	}

	// The media fixture: an uncaptioned video and an autoplaying audio
	media := parse(pages["/media"].HTML)
	uncaptioned := false
	media.Find("video").Each(func(_ int, s *goquery.Selection) {
		if s.Find(`track[kind="captions"]`).Length() == 0 {
			uncaptioned = true
		}
	})
	if !uncaptioned {
		t.Error("/media must contain a video without captions")
	}
	if media.Find("audio[autoplay]").Length() == 0 {
		t.Error("/media must contain autoplaying audio")
	}
}

// TestPageHandler verifies fixtures are served as HTML
func TestPageHandler(t *testing.T) {
	t.Parallel()

	s := NewDemoServer(DefaultConfig())
	page := s.pages["/broken"]

	rec := httptest.NewRecorder()
	s.pageHandler(page)(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != page.HTML {
		t.Error("served body does not match the fixture")
	}
}

// TestIndexHandler verifies the index lists every fixture path
func TestIndexHandler(t *testing.T) {
	t.Parallel()

	s := NewDemoServer(DefaultConfig())
	rec := httptest.NewRecorder()
	s.indexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for path := range s.pages {
		if !strings.Contains(body, path) {
			t.Errorf("index does not list %s", path)
		}
	}

	// Unknown paths under / 404
	rec = httptest.NewRecorder()
	s.indexHandler(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}
