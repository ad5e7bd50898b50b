package impact_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/impact"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
	"github.com/raysh454/aria/internal/testutil"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture HTML: %v", err)
	}
	return doc
}

func newAssessor(t *testing.T) *impact.Assessor {
	t.Helper()
	a, err := impact.New(&testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

// fakeQuerier returns one canned payload for every expression.
type fakeQuerier struct {
	payload string
}

func (f *fakeQuerier) Eval(_ context.Context, _ string, out any) error {
	p := f.payload
	if p == "" {
		p = "[]"
	}
	return json.Unmarshal([]byte(p), out)
}

const cleanPage = `<html lang="en"><head>
	<meta name="viewport" content="width=device-width, initial-scale=1">
</head><body>
	<header><h1>Title</h1></header>
	<nav><a href="#main">Skip to content</a></nav>
	<main id="main"><p>Short text. Easy words.</p></main>
	<footer>f</footer>
</body></html>`

// TestAssess_CleanPageScoresPerfect verifies a clean page scores 100 everywhere
func TestAssess_CleanPageScoresPerfect(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, cleanPage)

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{})

	for _, cat := range model.Categories() {
		da := analyses[cat]
		if da == nil {
			t.Fatalf("missing analysis for category %s", cat)
		}
		if da.Score != 100 {
			t.Errorf("category %s: expected score 100, got %d (issues: %+v)", cat, da.Score, da.Issues)
		}
		if len(da.Recommendations) != 0 {
			t.Errorf("category %s: perfect score must carry no recommendations", cat)
		}
	}
}

// TestVisual_PreventZoomPenalty verifies zoom prevention costs exactly its penalty
func TestVisual_PreventZoomPenalty(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><head>
		<meta name="viewport" content="width=device-width, initial-scale=1, user-scalable=no">
	</head><body><main><p>x</p></main></body></html>`)

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{})
	visual := analyses[model.CategoryVisual]

	want := 100 - rules.PenaltyPreventZoom
	if visual.Score != want {
		t.Errorf("expected visual score %d, got %d", want, visual.Score)
	}

	found := false
	for _, iss := range visual.Issues {
		if iss.Rule == rules.PreventZoom {
			found = true
			if iss.Severity != model.SeverityError {
				t.Errorf("preventZoom must be an error, got %s", iss.Severity)
			}
		}
	}
	if !found {
		t.Error("expected a preventZoom issue")
	}
}

// TestVisual_FocusPenaltyCapped verifies many missing indicators cap the penalty
func TestVisual_FocusPenaltyCapped(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><body><main><p>x</p></main></body></html>`)

	// 30 focusable elements without indicators: 30*2=60 capped at 20.
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 30; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"tag":"button","id":"","tabindex":"","disabled":false,"has_focus_indicator":false,"width":48,"height":48}`)
	}
	b.WriteString("]")

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{payload: b.String()})
	visual := analyses[model.CategoryVisual]

	want := 100 - rules.FocusPenaltyCap
	if visual.Score != want {
		t.Errorf("expected capped visual score %d, got %d", want, visual.Score)
	}
}

// TestVisual_ScoreFloorsAtZero verifies scores never go negative
func TestVisual_ScoreFloorsAtZero(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	imgs := strings.Repeat(`<img src="x.jpg">`, 25)
	doc := parseDoc(t, `<html><head>
		<meta name="viewport" content="user-scalable=no">
	</head><body>`+imgs+`</body></html>`)

	analyses := a.Assess(context.Background(), doc, nil)
	visual := analyses[model.CategoryVisual]

	if visual.Score != 0 {
		t.Errorf("expected floored score 0, got %d", visual.Score)
	}
	if len(visual.Recommendations) == 0 {
		t.Error("a zero score must carry recommendations")
	}
}

// TestAuditory_Signals verifies captions, autoplay and transcript rules
func TestAuditory_Signals(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><body><main>
		<video src="a.mp4"></video>
		<video src="b.mp4"><track kind="captions" src="b.vtt"></video>
		<audio autoplay src="c.mp3"></audio>
	</main></body></html>`)

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{})
	auditory := analyses[model.CategoryAuditory]

	want := 100 - rules.PenaltyMissingCaptions - rules.PenaltyAutoplayAudio - rules.PenaltyMissingTranscripts
	if auditory.Score != want {
		t.Errorf("expected auditory score %d, got %d (issues: %+v)", want, auditory.Score, auditory.Issues)
	}

	rulesSeen := map[string]bool{}
	for _, iss := range auditory.Issues {
		rulesSeen[iss.Rule] = true
	}
	for _, rule := range []string{rules.MissingCaptions, rules.AutoplayAudio, rules.MissingTranscripts} {
		if !rulesSeen[rule] {
			t.Errorf("expected %s issue", rule)
		}
	}
}

// TestMotor_Signals verifies tab-order removal, small targets and skip links
func TestMotor_Signals(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><body><main>
		<button tabindex="-1">go</button>
		<button tabindex="-1" disabled>off</button>
		<a href="/a">link text</a>
	</main></body></html>`)

	q := &fakeQuerier{payload: `[
		{"tag":"button","id":"tiny","tabindex":"","disabled":false,"has_focus_indicator":true,"width":20,"height":20},
		{"tag":"a","id":"fine","tabindex":"","disabled":false,"has_focus_indicator":true,"width":120,"height":48}
	]`}

	analyses := a.Assess(context.Background(), doc, q)
	motor := analyses[model.CategoryMotor]

	want := 100 - rules.PenaltyKeyboardInaccessible - rules.PenaltySmallClickTarget - rules.PenaltyMissingSkipLinks
	if motor.Score != want {
		t.Errorf("expected motor score %d, got %d (issues: %+v)", want, motor.Score, motor.Issues)
	}
}

// TestCognitive_Signals verifies form help, timeout and moving content rules
func TestCognitive_Signals(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><body><main>
		<form><input type="password" name="pw"></form>
		<marquee>news</marquee>
		<p>Your session will expire after ten minutes. Short text here.</p>
	</main></body></html>`)

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{})
	cognitive := analyses[model.CategoryCognitive]

	want := 100 - rules.PenaltyMissingFormHelp - rules.PenaltySessionTimeouts - rules.PenaltyMovingContent
	if cognitive.Score != want {
		t.Errorf("expected cognitive score %d, got %d (issues: %+v)", want, cognitive.Score, cognitive.Issues)
	}
}

// TestCognitive_FormWithHelpPasses verifies help markers suppress the form issue
func TestCognitive_FormWithHelpPasses(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, `<html><body><main>
		<form>
			<input type="password" name="pw">
			<small class="hint">At least 12 characters.</small>
		</form>
	</main></body></html>`)

	analyses := a.Assess(context.Background(), doc, &fakeQuerier{})
	for _, iss := range analyses[model.CategoryCognitive].Issues {
		if iss.Rule == rules.MissingFormHelp {
			t.Error("form with help text must not be flagged")
		}
	}
}

// TestAssess_MoreIssuesNeverRaiseScore verifies score monotonicity
func TestAssess_MoreIssuesNeverRaiseScore(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)

	base := parseDoc(t, `<html><body><main><video src="a.mp4"></video></main></body></html>`)
	worse := parseDoc(t, `<html><body><main>
		<video src="a.mp4"></video>
		<audio autoplay src="b.mp3"></audio>
	</main></body></html>`)

	baseScore := a.Assess(context.Background(), base, &fakeQuerier{})[model.CategoryAuditory].Score
	worseScore := a.Assess(context.Background(), worse, &fakeQuerier{})[model.CategoryAuditory].Score

	if worseScore > baseScore {
		t.Errorf("adding issues raised the score: %d > %d", worseScore, baseScore)
	}
}

// TestAssess_NilQuerierDegrades verifies dynamic signals are skipped, not fatal
func TestAssess_NilQuerierDegrades(t *testing.T) {
	t.Parallel()
	a := newAssessor(t)
	doc := parseDoc(t, cleanPage)

	analyses := a.Assess(context.Background(), doc, nil)
	for _, cat := range model.Categories() {
		if analyses[cat] == nil {
			t.Fatalf("missing analysis for %s with nil querier", cat)
		}
	}
}
