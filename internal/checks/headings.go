package checks

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Headings walks heading levels in document order and flags skips of more
// than one level, plus a missing <h1> on pages that do use headings.
func Headings(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckHeadings)

	prev := 0
	hasH1 := false
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		res.Counters["total_headings"]++

		name := goquery.NodeName(h)
		level := int(name[1] - '0')
		if level == 1 {
			hasH1 = true
		}

		if prev != 0 && level > prev+1 {
			res.AddIssue(rules.NewIssue(rules.HeadingHierarchy, model.SeverityWarning,
				fmt.Sprintf("heading level skips from h%d to h%d", prev, level),
				locationFor(h), name))
		} else {
			res.Passed++
		}
		prev = level
	})

	if hasH1 {
		res.Counters["has_h1"] = 1
	} else if res.Counters["total_headings"] > 0 {
		res.AddIssue(rules.NewIssue(rules.MissingH1, model.SeverityError,
			"page uses headings but has no h1", "", ""))
	}

	return res, nil
}
