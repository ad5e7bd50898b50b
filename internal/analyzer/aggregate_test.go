package analyzer_test

import (
	"testing"

	"github.com/raysh454/aria/internal/analyzer"
	"github.com/raysh454/aria/internal/checks"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/rules"
)

func checkResultWith(name string, issues ...model.Issue) *model.CheckResult {
	cr := model.NewCheckResult(name)
	for _, iss := range issues {
		cr.AddIssue(iss)
	}
	return cr
}

// TestAggregate_EmptyInputs verifies a report is complete even with nothing found
func TestAggregate_EmptyInputs(t *testing.T) {
	t.Parallel()
	info := model.PageInfo{URL: "https://example.com"}

	report := analyzer.Aggregate(info, nil, nil)

	for _, name := range checks.Order() {
		if report.Checks[name] == nil {
			t.Errorf("missing check result for %q", name)
		}
	}
	for _, cat := range model.Categories() {
		da := report.DisabilityAnalysis[cat]
		if da == nil {
			t.Fatalf("missing analysis for %s", cat)
		}
		if da.Score != 100 {
			t.Errorf("baseline analysis for %s must score 100, got %d", cat, da.Score)
		}
	}
	if report.Summary.OverallScore != 100 {
		t.Errorf("expected overall score 100, got %d", report.Summary.OverallScore)
	}
	if report.Summary.WCAGLevel != model.WCAGLevelAA {
		t.Errorf("no critical issues must mean AA, got %q", report.Summary.WCAGLevel)
	}
}

// TestAggregate_ScoreFormula verifies critical and warning weighting
func TestAggregate_ScoreFormula(t *testing.T) {
	t.Parallel()
	crs := map[string]*model.CheckResult{
		checks.CheckImages: checkResultWith(checks.CheckImages,
			model.Issue{Severity: model.SeverityError, Rule: rules.MissingAltText, Message: "a"},
			model.Issue{Severity: model.SeverityError, Rule: rules.MissingAltText, Message: "b"},
		),
		checks.CheckLinks: checkResultWith(checks.CheckLinks,
			model.Issue{Severity: model.SeverityWarning, Rule: rules.VagueLinkText, Message: "c"},
			model.Issue{Severity: model.SeverityWarning, Rule: rules.VagueLinkText, Message: "d"},
			model.Issue{Severity: model.SeverityWarning, Rule: rules.VagueLinkText, Message: "e"},
		),
	}

	report := analyzer.Aggregate(model.PageInfo{}, crs, nil)

	s := report.Summary
	if s.CriticalIssues != 2 || s.WarningIssues != 3 {
		t.Fatalf("expected 2 critical / 3 warnings, got %d / %d", s.CriticalIssues, s.WarningIssues)
	}
	want := 100 - 2*rules.OverallCriticalWeight - 3*rules.OverallWarningWeight
	if s.OverallScore != want {
		t.Errorf("expected overall score %d, got %d", want, s.OverallScore)
	}
	if s.WCAGLevel != model.WCAGLevelNonCompliant {
		t.Errorf("critical issues must mean Non-compliant, got %q", s.WCAGLevel)
	}
	if s.TotalIssues != 5 {
		t.Errorf("expected 5 total issues, got %d", s.TotalIssues)
	}
}

// TestAggregate_WarningsOnlyStaysAA verifies warnings alone do not break AA
func TestAggregate_WarningsOnlyStaysAA(t *testing.T) {
	t.Parallel()
	crs := map[string]*model.CheckResult{
		checks.CheckSemantic: checkResultWith(checks.CheckSemantic,
			model.Issue{Severity: model.SeverityWarning, Rule: rules.MissingMain, Message: "no main"},
		),
	}

	report := analyzer.Aggregate(model.PageInfo{}, crs, nil)
	if report.Summary.WCAGLevel != model.WCAGLevelAA {
		t.Errorf("warnings only must keep AA, got %q", report.Summary.WCAGLevel)
	}
}

// TestAggregate_ScoreFloorsAtZero verifies the overall score never goes negative
func TestAggregate_ScoreFloorsAtZero(t *testing.T) {
	t.Parallel()
	cr := model.NewCheckResult(checks.CheckImages)
	for i := 0; i < 15; i++ {
		cr.AddIssue(model.Issue{Severity: model.SeverityError, Rule: rules.MissingAltText})
	}

	report := analyzer.Aggregate(model.PageInfo{}, map[string]*model.CheckResult{checks.CheckImages: cr}, nil)
	if report.Summary.OverallScore != 0 {
		t.Errorf("expected floored score 0, got %d", report.Summary.OverallScore)
	}
}

// TestAggregate_IssueOrdering verifies issues flatten in check order then category order
func TestAggregate_IssueOrdering(t *testing.T) {
	t.Parallel()
	crs := map[string]*model.CheckResult{
		checks.CheckSemantic: checkResultWith(checks.CheckSemantic,
			model.Issue{Severity: model.SeverityWarning, Rule: rules.MissingMain}),
		checks.CheckImages: checkResultWith(checks.CheckImages,
			model.Issue{Severity: model.SeverityError, Rule: rules.MissingAltText}),
	}
	analyses := map[model.Category]*model.DisabilityAnalysis{
		model.CategoryVisual: {
			Category: model.CategoryVisual,
			Issues:   []model.Issue{{Severity: model.SeverityError, Rule: rules.PreventZoom}},
			Score:    75,
		},
	}

	report := analyzer.Aggregate(model.PageInfo{}, crs, analyses)

	wantOrder := []string{rules.MissingAltText, rules.MissingMain, rules.PreventZoom}
	if len(report.Issues) != len(wantOrder) {
		t.Fatalf("expected %d issues, got %d", len(wantOrder), len(report.Issues))
	}
	for i, rule := range wantOrder {
		if report.Issues[i].Rule != rule {
			t.Errorf("issue %d: expected rule %s, got %s", i, rule, report.Issues[i].Rule)
		}
	}
}

// TestAggregate_PassedChecksSummed verifies pass counts accumulate
func TestAggregate_PassedChecksSummed(t *testing.T) {
	t.Parallel()
	a := model.NewCheckResult(checks.CheckImages)
	a.Passed = 3
	b := model.NewCheckResult(checks.CheckLinks)
	b.Passed = 4

	report := analyzer.Aggregate(model.PageInfo{}, map[string]*model.CheckResult{
		checks.CheckImages: a,
		checks.CheckLinks:  b,
	}, nil)

	if report.Summary.PassedChecks != 7 {
		t.Errorf("expected 7 passed checks, got %d", report.Summary.PassedChecks)
	}
}
