package analyzer

import (
	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

// Aggregate merges every check result and disability analysis into one
// report. Pure: it cannot fail on well-formed inputs (guaranteed upstream by
// the check-isolation contract) and does not mutate its arguments. Issue
// order is encounter order: checks in fixed check order first, then the
// disability categories in fixed category order.
func Aggregate(info model.PageInfo, checkResults map[string]*model.CheckResult, analyses map[model.Category]*model.DisabilityAnalysis) *model.AnalysisReport {
	outChecks := make(map[string]*model.CheckResult, len(checks.Order()))
	for _, name := range checks.Order() {
		if cr := checkResults[name]; cr != nil {
			outChecks[name] = cr
		} else {
			outChecks[name] = model.NewCheckResult(name)
		}
	}

	outAnalyses := make(map[model.Category]*model.DisabilityAnalysis, len(model.Categories()))
	for _, cat := range model.Categories() {
		if da := analyses[cat]; da != nil {
			outAnalyses[cat] = da
		} else {
			outAnalyses[cat] = &model.DisabilityAnalysis{Category: cat, Issues: []model.Issue{}, Score: 100}
		}
	}

	issues := []model.Issue{}
	passed := 0
	for _, name := range checks.Order() {
		cr := outChecks[name]
		issues = append(issues, cr.Issues...)
		passed += cr.Passed
	}
	for _, cat := range model.Categories() {
		issues = append(issues, outAnalyses[cat].Issues...)
	}

	critical, warning := 0, 0
	for _, iss := range issues {
		switch iss.Severity {
		case model.SeverityError:
			critical++
		case model.SeverityWarning:
			warning++
		}
	}

	score := 100 - rules.OverallCriticalWeight*critical - rules.OverallWarningWeight*warning
	if score < 0 {
		score = 0
	}
	level := model.WCAGLevelAA
	if critical > 0 {
		level = model.WCAGLevelNonCompliant
	}

	return &model.AnalysisReport{
		PageInfo:           info,
		Checks:             outChecks,
		DisabilityAnalysis: outAnalyses,
		Issues:             issues,
		Summary: model.Summary{
			TotalIssues:    len(issues),
			CriticalIssues: critical,
			WarningIssues:  warning,
			PassedChecks:   passed,
			WCAGLevel:      level,
			OverallScore:   score,
		},
	}
}
