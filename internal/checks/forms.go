package checks

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Forms requires every non-hidden form control to carry an accessible name:
// an associated <label for=...>, an aria-label, or aria-labelledby.
func Forms(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckForms)

	doc.Find("input, select, textarea").Each(func(_ int, ctl *goquery.Selection) {
		typ := getAttr(ctl, "type")
		if typ == "hidden" {
			return
		}
		res.Counters["total_controls"]++

		if hasAccessibleName(doc, ctl) {
			res.Passed++
			return
		}
		res.AddIssue(rules.NewIssue(rules.MissingLabel, model.SeverityError,
			"form control has no associated label, aria-label or aria-labelledby",
			locationFor(ctl, "name"), goquery.NodeName(ctl)))
	})

	return res, nil
}

func hasAccessibleName(doc *goquery.Document, ctl *goquery.Selection) bool {
	if getAttr(ctl, "aria-label") != "" || getAttr(ctl, "aria-labelledby") != "" {
		return true
	}
	if id := getAttr(ctl, "id"); id != "" {
		if doc.Find(`label[for="` + id + `"]`).Length() > 0 {
			return true
		}
	}
	// A wrapping <label> also names the control.
	return ctl.ParentsFiltered("label").Length() > 0
}
