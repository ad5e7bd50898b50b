package checks

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// genericLinkTexts are phrases that say nothing about a link's destination.
var genericLinkTexts = map[string]struct{}{
	"click here": {},
	"read more":  {},
	"more":       {},
	"here":       {},
}

// Links requires every <a href> to have non-empty text or an aria-label, and
// flags generic phrases like "click here".
func Links(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckLinks)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		res.Counters["total_links"]++
		loc := locationFor(a, "href")

		text := strings.TrimSpace(a.Text())
		if text == "" && getAttr(a, "aria-label") == "" {
			res.AddIssue(rules.NewIssue(rules.EmptyLinkText, model.SeverityError,
				"link has no text and no aria-label", loc, "a"))
			return
		}

		if _, generic := genericLinkTexts[strings.ToLower(text)]; generic {
			res.AddIssue(rules.NewIssue(rules.VagueLinkText, model.SeverityWarning,
				`link text "`+text+`" does not describe the destination`, loc, "a"))
			return
		}

		res.Passed++
	})

	return res, nil
}
