package impact

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/aria/internal/dynamic"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

const (
	complexInputSelector = `input[type="email"], input[type="password"], input[type="tel"], select`
	helpMarkerSelector   = `.help, .help-text, .hint, .description, [data-help], small`
)

var sessionTimeoutRe = regexp.MustCompile(`(?i)session\s+(will\s+)?(time[ds ]*\s*out|expire)`)

func (a *Assessor) cognitive(ctx context.Context, doc *goquery.Document, q dynamic.Querier) *model.DisabilityAnalysis {
	sc := newScorecard(model.CategoryCognitive)

	unhelped := 0
	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		if form.Find(complexInputSelector).Length() == 0 {
			return
		}
		if form.Find(helpMarkerSelector).Length() > 0 {
			return
		}
		if form.Find("[aria-describedby]").Length() > 0 {
			return
		}
		unhelped++
	})
	if unhelped > 0 {
		sc.add(rules.NewIssue(rules.MissingFormHelp, model.SeverityWarning,
			fmt.Sprintf("%d forms with complex inputs offer no help text", unhelped), "", "form"),
			unhelped*rules.PenaltyMissingFormHelp)
	}

	if hasTimeoutMarkers(doc) {
		sc.add(rules.NewIssue(rules.SessionTimeouts, model.SeverityWarning,
			"page indicates a session timeout that users cannot extend", "", ""),
			rules.PenaltySessionTimeouts)
	}

	if hasMovingContent(doc) {
		sc.add(rules.NewIssue(rules.MovingContent, model.SeverityWarning,
			"page contains blinking or continuously animated content", "", ""),
			rules.PenaltyMovingContent)
	}

	if avg := averageWordsPerSentence(doc.Find("body").Text()); avg > rules.MaxWordsPerSentence {
		sc.add(rules.NewIssue(rules.ComplexLanguage, model.SeverityInfo,
			fmt.Sprintf("average sentence length %.1f words exceeds %d", avg, rules.MaxWordsPerSentence), "", ""),
			rules.PenaltyComplexLanguage)
	}

	return sc.finish(cognitiveRecommendations)
}

func hasTimeoutMarkers(doc *goquery.Document) bool {
	if doc.Find(`meta[http-equiv="refresh"], [data-session-timeout]`).Length() > 0 {
		return true
	}
	return sessionTimeoutRe.MatchString(doc.Find("body").Text())
}

func hasMovingContent(doc *goquery.Document) bool {
	if doc.Find("marquee, blink").Length() > 0 {
		return true
	}
	moving := false
	doc.Find("[style]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		style, _ := el.Attr("style")
		style = strings.ToLower(style)
		if strings.Contains(style, "blink") || strings.Contains(style, "animation") {
			moving = true
			return false
		}
		return true
	})
	return moving
}

// averageWordsPerSentence splits body text on sentence punctuation and
// averages the word counts. Returns 0 for pages without real sentences.
func averageWordsPerSentence(text string) float64 {
	sentences := regexp.MustCompile(`[.!?]+`).Split(text, -1)
	total, count := 0, 0
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if words == 0 {
			continue
		}
		total += words
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
