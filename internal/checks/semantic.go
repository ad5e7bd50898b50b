package checks

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Semantic records landmark element presence and flags a missing <main>.
func Semantic(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckSemantic)

	for _, tag := range []string{"main", "nav", "header", "footer"} {
		if doc.Find(tag).Length() > 0 {
			res.Counters["has_"+tag] = 1
			res.Passed++
		} else {
			res.Counters["has_"+tag] = 0
		}
	}

	if res.Counters["has_main"] == 0 {
		res.AddIssue(rules.NewIssue(rules.MissingMain, model.SeverityWarning,
			"page has no <main> landmark", "", ""))
	}

	return res, nil
}
