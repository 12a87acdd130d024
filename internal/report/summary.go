// internal/report/summary.go
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dq-calculator/internal/common/config"
	"dq-calculator/internal/models"
)

// Generator renders reports against one configuration snapshot.
type Generator struct {
	cfg     *config.Config
	cfgFile string
	now     func() time.Time
}

// NewGenerator creates a report generator. cfgFile is echoed into export
// metadata so a report can be traced back to the rule set that produced it.
func NewGenerator(cfg *config.Config, cfgFile string) *Generator {
	return &Generator{cfg: cfg, cfgFile: cfgFile, now: time.Now}
}

// SummaryReport produces the narrative plain-text estimation report. The
// explanation text is supplied by the caller and included verbatim when
// non-empty; this package never recomputes.
func (g *Generator) SummaryReport(responses models.Responses, totalDays int, breakdown *models.Breakdown, pricePerDay decimal.Decimal, explanation string) string {
	var lines []string
	banner := strings.Repeat("=", 60)
	rule := func(n int) string { return strings.Repeat("-", n) }

	lines = append(lines,
		banner,
		"DATA QUALITY SERVICE ESTIMATION REPORT",
		banner,
	)

	if g.cfg.Report.IncludeExecutiveSummary {
		lines = append(lines, "", "EXECUTIVE SUMMARY", rule(20))
		lines = append(lines, g.executiveSummary(responses, totalDays, breakdown, pricePerDay)...)
	}

	lines = append(lines,
		"",
		"PROJECT OVERVIEW",
		rule(20),
		fmt.Sprintf("Tables/Workflows: %.0f", responses.TableCount()),
	)

	if v, ok := responses.String("workflow_complexity"); ok {
		lines = append(lines, fmt.Sprintf("Complexity: %s", v))
	}
	if integration := responses.ResolveString("data_sources", "integration_complexity", ""); integration != "" {
		lines = append(lines, fmt.Sprintf("Integration: %s", integration))
	}

	lines = append(lines,
		"",
		"ESTIMATION RESULTS",
		rule(20),
		fmt.Sprintf("Total Working Days: %d", totalDays),
	)
	if pricePerDay.IsPositive() {
		cost := Cost(totalDays, pricePerDay)
		lines = append(lines, fmt.Sprintf("Total Cost: %s%s", g.cfg.Pricing.CurrencySymbol, cost.StringFixed(2)))
	}

	lines = append(lines, "", "COST BREAKDOWN", rule(20))
	for _, row := range Rows(breakdown, totalDays, pricePerDay) {
		lines = append(lines, fmt.Sprintf("%s: %.1f days (%s)", row.Component, row.RawDays, row.Percentage))
	}

	if explanation != "" {
		lines = append(lines, "", "CALCULATION EXPLANATION", rule(30))
		lines = append(lines, strings.Split(strings.TrimSpace(explanation), "\n")...)
	}

	if g.cfg.Report.IncludeMethodology && len(g.cfg.MethodologyPhases) > 0 {
		lines = append(lines, "", "DQ METHODOLOGY", rule(30))
		phaseIDs := make([]string, 0, len(g.cfg.MethodologyPhases))
		for id := range g.cfg.MethodologyPhases {
			phaseIDs = append(phaseIDs, id)
		}
		sort.Strings(phaseIDs)
		for _, id := range phaseIDs {
			phase := g.cfg.MethodologyPhases[id]
			lines = append(lines, fmt.Sprintf("%s:", phase.Title))
			for _, descLine := range strings.Split(strings.TrimSpace(phase.Description), "\n") {
				if trimmed := strings.TrimSpace(descLine); trimmed != "" {
					lines = append(lines, "  "+trimmed)
				}
			}
			lines = append(lines, "")
		}
	}

	if g.cfg.Report.IncludeRiskAssessment {
		lines = append(lines, "", "RISK ASSESSMENT", rule(20))
		lines = append(lines, riskAssessment(responses, totalDays)...)
	}

	lines = append(lines, "", banner)
	if g.cfg.Report.IncludeCompanyBranding {
		lines = append(lines, fmt.Sprintf("Generated by %s", g.cfg.Report.CompanyInfo.Name))
	}
	lines = append(lines,
		fmt.Sprintf("Report Date: %s", g.now().Format(g.cfg.Export.TimestampFormat)),
		banner,
	)

	return strings.Join(lines, "\n")
}

// executiveSummary condenses the estimate and its key cost drivers for a
// non-technical reader.
func (g *Generator) executiveSummary(responses models.Responses, totalDays int, breakdown *models.Breakdown, pricePerDay decimal.Decimal) []string {
	estimate := fmt.Sprintf("Estimate: %d working days", totalDays)
	if pricePerDay.IsPositive() {
		cost := Cost(totalDays, pricePerDay)
		estimate += fmt.Sprintf(" (%s%s)", g.cfg.Pricing.CurrencySymbol, cost.StringFixed(0))
	}

	lines := []string{
		"Project: Data Quality Service Implementation",
		fmt.Sprintf("Scope: %.0f table(s)/workflow(s)", responses.TableCount()),
		estimate,
	}

	var factors []string
	if label, ok := responses.String("workflow_complexity"); ok && strings.Contains(label, "Complex") {
		factors = append(factors, fmt.Sprintf("Complex workflows add %.1f days", breakdown.Get(models.ComponentWorkflowComplexity)))
	}
	if label := responses.ResolveString("data_sources", "integration_complexity", ""); strings.Contains(label, "Multiple") || strings.Contains(label, "Complex") {
		factors = append(factors, fmt.Sprintf("Multi-source integration adds %.1f days", breakdown.Get(models.ComponentDataIntegration)))
	}
	if responses.ResolveString("existing_rules", "dq_rules_status", "") == "Not documented" {
		factors = append(factors, fmt.Sprintf("Undocumented rules add %.1f days", breakdown.Get(models.ComponentRulesDevelopment)))
	}
	if responses.ResolveString("tool_installation", "datawash_installation", "") == "Yes, please provide installation" {
		factors = append(factors, fmt.Sprintf("Tool installation adds %.1f days", breakdown.Get(models.ComponentToolSetup)))
	}

	if len(factors) > 0 {
		lines = append(lines, "", "Key factors:")
		for _, factor := range factors {
			lines = append(lines, "- "+factor)
		}
	}
	return lines
}
