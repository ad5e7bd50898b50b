package checks

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Images flags <img> elements without an alt attribute, and empty alt values
// that are not explicitly marked decorative via a role attribute.
func Images(doc *goquery.Document) (*model.CheckResult, error) {
	res := model.NewCheckResult(CheckImages)

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		res.Counters["total_images"]++
		loc := locationFor(img, "src")

		alt, hasAlt := img.Attr("alt")
		switch {
		case !hasAlt:
			res.AddIssue(rules.NewIssue(rules.MissingAltText, model.SeverityError,
				"image has no alt attribute", loc, "img"))
		case alt == "":
			if getAttr(img, "role") == "" {
				res.AddIssue(rules.NewIssue(rules.EmptyAltText, model.SeverityWarning,
					"image has an empty alt but no role marking it decorative", loc, "img"))
			} else {
				res.Passed++
			}
		default:
			res.Passed++
		}
	})

	return res, nil
}
