// Package checks implements the static markup rule evaluators. Each check is
// a pure function over the parsed document and is isolated: an internal
// fault is recovered locally and downgraded to an empty CheckResult so one
// broken check never aborts the run.
package checks

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

// Check names. Order() fixes the order they appear in reports.
const (
	CheckImages   = "images"
	CheckHeadings = "headings"
	CheckForms    = "forms"
	CheckLinks    = "links"
	CheckColors   = "colors"
	CheckKeyboard = "keyboard"
	CheckARIA     = "aria"
	CheckSemantic = "semantic"
)

// Order returns every check name (static and dynamic) in the fixed order the
// aggregator flattens them.
func Order() []string {
	return []string{
		CheckImages, CheckHeadings, CheckForms, CheckLinks,
		CheckColors, CheckKeyboard, CheckARIA, CheckSemantic,
	}
}

// CheckError records a single check's internal fault. It is contained at the
// check boundary: the runner logs it and substitutes an empty result.
type CheckError struct {
	Check string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %q failed: %v", e.Check, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Func is a static check over the parsed markup.
type Func func(doc *goquery.Document) (*model.CheckResult, error)

// statics lists the static checks in registry order.
var statics = []struct {
	Name string
	Fn   Func
}{
	{CheckImages, Images},
	{CheckHeadings, Headings},
	{CheckForms, Forms},
	{CheckLinks, Links},
	{CheckARIA, ARIA},
	{CheckSemantic, Semantic},
}

// StaticNames returns the names of the static checks in registry order.
func StaticNames() []string {
	out := make([]string, 0, len(statics))
	for _, c := range statics {
		out = append(out, c.Name)
	}
	return out
}

// RunStatic executes every static check against doc. Each check runs under
// Run's isolation contract, so the returned map always contains a well-formed
// result per static check name.
func RunStatic(doc *goquery.Document, logger interfaces.Logger) map[string]*model.CheckResult {
	out := make(map[string]*model.CheckResult, len(statics))
	for _, c := range statics {
		out[c.Name] = Run(c.Name, c.Fn, doc, logger)
	}
	return out
}

// Run executes one check, recovering panics and downgrading any failure to
// an empty CheckResult. This is the check-isolation contract: the run always
// continues with a valid result.
func Run(name string, fn Func, doc *goquery.Document, logger interfaces.Logger) (result *model.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			logCheckFault(logger, &CheckError{Check: name, Err: fmt.Errorf("panic: %v", r)})
			result = model.NewCheckResult(name)
		}
	}()

	res, err := fn(doc)
	if err != nil {
		logCheckFault(logger, &CheckError{Check: name, Err: err})
		return model.NewCheckResult(name)
	}
	if res == nil {
		return model.NewCheckResult(name)
	}
	return res
}

func logCheckFault(logger interfaces.Logger, cerr *CheckError) {
	if logger == nil {
		return
	}
	logger.Warn("check failed, substituting empty result",
		interfaces.Field{Key: "check", Value: cerr.Check},
		interfaces.Field{Key: "error", Value: cerr.Err.Error()})
}

// getAttr safely retrieves a trimmed attribute value from a selection.
func getAttr(sel *goquery.Selection, attrName string) string {
	val, exists := sel.Attr(attrName)
	if exists {
		return strings.TrimSpace(val)
	}
	return ""
}

// locationFor builds a best-effort locator for an element: id, then a named
// attribute (src/href/name), then nothing.
func locationFor(sel *goquery.Selection, attrs ...string) string {
	if id := getAttr(sel, "id"); id != "" {
		return "#" + id
	}
	for _, a := range attrs {
		if v := getAttr(sel, a); v != "" {
			return v
		}
	}
	return ""
}
