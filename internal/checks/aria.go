package checks

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// knownRoles is the set of ARIA roles we accept. Deliberately a common
// subset, not the full taxonomy: unrecognized values are flagged so typos
// like role="buton" surface.
var knownRoles = map[string]struct{}{
	"alert": {}, "alertdialog": {}, "application": {}, "article": {},
	"banner": {}, "button": {}, "cell": {}, "checkbox": {}, "columnheader": {},
	"combobox": {}, "complementary": {}, "contentinfo": {}, "definition": {},
	"dialog": {}, "directory": {}, "document": {}, "feed": {}, "figure": {},
	"form": {}, "grid": {}, "gridcell": {}, "group": {}, "heading": {},
	"img": {}, "link": {}, "list": {}, "listbox": {}, "listitem": {},
	"log": {}, "main": {}, "marquee": {}, "math": {}, "menu": {},
	"menubar": {}, "menuitem": {}, "menuitemcheckbox": {}, "menuitemradio": {},
	"navigation": {}, "none": {}, "note": {}, "option": {}, "presentation": {},
	"progressbar": {}, "radio": {}, "radiogroup": {}, "region": {}, "row": {},
	"rowgroup": {}, "rowheader": {}, "scrollbar": {}, "search": {},
	"searchbox": {}, "separator": {}, "slider": {}, "spinbutton": {},
	"status": {}, "switch": {}, "tab": {}, "table": {}, "tablist": {},
	"tabpanel": {}, "term": {}, "textbox": {}, "timer": {}, "toolbar": {},
	"tooltip": {}, "tree": {}, "treegrid": {}, "treeitem": {},
}

// ARIA runs lightweight ARIA sanity checks: unrecognized role values,
// aria-hidden on focusable elements, and id references that resolve to
// nothing. Heuristic, not a conformance suite.
func ARIA(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckARIA)

	doc.Find("[role]").Each(func(_ int, el *goquery.Selection) {
		res.Counters["total_roles"]++
		role := strings.ToLower(getAttr(el, "role"))
		if _, ok := knownRoles[role]; !ok {
			res.AddIssue(rules.NewIssue(rules.InvalidAriaRole, model.SeverityError,
				`unrecognized ARIA role "`+role+`"`, locationFor(el), goquery.NodeName(el)))
			return
		}
		res.Passed++
	})

	doc.Find(`[aria-hidden="true"]`).Each(func(_ int, el *goquery.Selection) {
		if isFocusable(el) {
			res.AddIssue(rules.NewIssue(rules.AriaHiddenFocusable, model.SeverityError,
				"focusable element is hidden from assistive technology with aria-hidden",
				locationFor(el, "href", "name"), goquery.NodeName(el)))
		}
	})

	for _, attr := range []string{"aria-labelledby", "aria-describedby"} {
		doc.Find("[" + attr + "]").Each(func(_ int, el *goquery.Selection) {
			for _, id := range strings.Fields(getAttr(el, attr)) {
				if doc.Find("#" + id).Length() == 0 {
					res.AddIssue(rules.NewIssue(rules.DanglingAriaRef, model.SeverityWarning,
						attr+` references missing id "`+id+`"`,
						locationFor(el), goquery.NodeName(el)))
				}
			}
		})
	}

	return res, nil
}

// isFocusable reports whether an element can receive keyboard focus by
// default or via tabindex.
func isFocusable(el *goquery.Selection) bool {
	switch goquery.NodeName(el) {
	case "button", "input", "select", "textarea":
		return true
	case "a":
		return getAttr(el, "href") != ""
	}
	ti := getAttr(el, "tabindex")
	return ti != "" && ti != "-1"
}
