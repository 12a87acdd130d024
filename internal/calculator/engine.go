// Package calculator implements the working-day estimation engine: a pure,
// deterministic mapping from a response set and the configured calculation
// rules to a total-days figure with a per-component breakdown.
package calculator

import (
	"math"
	"strings"

	"dq-calculator/internal/common/config"
	"dq-calculator/internal/models"
)

// Fallback rates applied when a response label resolves to no table entry.
// Lookups never fail; malformed responses degrade to these instead of
// crashing an otherwise-successful estimate.
const (
	defaultWorkflowMultiplier = 2.0
	defaultRulesBaseImpact    = 5.0
	defaultExistingToolDays   = 2.0
	defaultToolAcquireDays    = 3.0
	defaultGovernanceDays     = 3.0
	defaultComplianceDays     = 2.0
	defaultHistoricalPerTable = 2.0
	defaultSystemIntegration  = 3.0
)

// Engine computes estimates against one immutable configuration snapshot.
type Engine struct {
	cfg   *config.Config
	rules *config.CalculationRules
}

// NewEngine creates an engine bound to the given configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg, rules: &cfg.CalculationRules}
}

// CalculateWorkingDays computes the estimated working days for a response
// set. The estimate is strictly additive across components; the total is the
// floored sum raised to at least minimum_project_days. The breakdown is NOT
// rescaled when the floor applies, so its sum may be below the total.
func (e *Engine) CalculateWorkingDays(responses models.Responses) (int, *models.Breakdown) {
	breakdown := &models.Breakdown{}

	breakdown.Add(models.ComponentBaseService, float64(e.rules.BaseServiceDays))
	breakdown.Add(models.ComponentWorkflowComplexity, e.workflowComplexity(responses))
	breakdown.Add(models.ComponentDataIntegration, e.integrationComplexity(responses))
	breakdown.Add(models.ComponentRulesDevelopment, e.rulesDevelopment(responses))
	breakdown.Add(models.ComponentDataVolumeImpact, e.dataVolumeImpact(responses))
	breakdown.Add(models.ComponentToolSetup, e.toolSetup(responses))
	breakdown.Add(models.ComponentCloudIntegration, e.cloudIntegration(responses))
	breakdown.Add(models.ComponentAdditionalRequirements, e.additionalRequirements(responses))

	totalDays := int(breakdown.Sum())
	if totalDays < e.rules.MinimumProjectDays {
		totalDays = e.rules.MinimumProjectDays
	}

	return totalDays, breakdown
}

func (e *Engine) workflowComplexity(responses models.Responses) float64 {
	tables := responses.TableCount()
	label, ok := responses.String("workflow_complexity")
	if !ok {
		label = "Simple (single table/report)"
	}
	return tables * lookup(e.rules.WorkflowMultipliers, label, defaultWorkflowMultiplier)
}

func (e *Engine) integrationComplexity(responses models.Responses) float64 {
	tables := responses.TableCount()
	label := responses.ResolveString("data_sources", "integration_complexity", "")

	multiplier := 0.0
	if v, ok := e.rules.IntegrationComplexity[label]; ok {
		multiplier = v
	} else if v, ok := e.rules.IntegrationComplexityLegacy[label]; ok {
		multiplier = v
	}
	return tables * multiplier
}

func (e *Engine) rulesDevelopment(responses models.Responses) float64 {
	label := responses.ResolveString("existing_rules", "dq_rules_status", "Not documented")
	baseImpact := lookup(e.rules.ExistingRulesImpact, label, defaultRulesBaseImpact)

	// Overhead is a step function: the first base_rules_included total rules
	// are free, every started block of 5 beyond that costs a flat rate.
	overhead := 0.0
	if rulesCount, ok := responses.Float("rules_count"); ok {
		totalRules := rulesCount * responses.TableCount()
		included := float64(e.rules.RulesOverhead.BaseRulesIncluded)
		if totalRules > included {
			blocks := math.Ceil((totalRules - included) / 5)
			overhead = blocks * e.rules.RulesOverhead.AdditionalRulesPer5
		}
	}

	return baseImpact + overhead
}

func (e *Engine) dataVolumeImpact(responses models.Responses) float64 {
	label, ok := responses.String("data_volume")
	if !ok {
		return 0
	}
	return responses.TableCount() * lookup(e.rules.DataVolumeMultipliers, label, 0)
}

func (e *Engine) toolSetup(responses models.Responses) float64 {
	days := 0.0

	tool := responses.ResolveString("commercial_tool", "dq_tool_status", "No commercial tool")
	if v, ok := e.rules.ToolSetup[tool]; ok {
		days += v
	} else if tool == "Have existing DQ tool" || tool == "Need other tool" {
		// Legacy labels predate the tool_setup table keys.
		if strings.Contains(strings.ToLower(tool), "existing") {
			days += lookup(e.rules.ToolSetup, "Have existing DQ tool", defaultExistingToolDays)
		} else {
			days += lookup(e.rules.ToolSetup, "Need tool acquisition", defaultToolAcquireDays)
		}
	}

	installation := responses.ResolveString("tool_installation", "datawash_installation", "No, not needed")
	days += lookup(e.rules.InstallationService, installation, 0)

	return days
}

func (e *Engine) cloudIntegration(responses models.Responses) float64 {
	label, ok := responses.String("cloud_platform")
	if !ok {
		label = "Not applicable"
	}
	return lookup(e.rules.CloudIntegration, label, 0)
}

func (e *Engine) additionalRequirements(responses models.Responses) float64 {
	days := 0.0

	// Governance polarity is deliberate: the absence of governance maturity
	// is what costs extra, not its presence.
	if !responses.Bool("governance_maturity") {
		days += lookup(e.rules.AdditionalRequirements, "governance_setup", defaultGovernanceDays)
	}
	if responses.Bool("compliance_req") {
		days += lookup(e.rules.AdditionalRequirements, "compliance", defaultComplianceDays)
	}
	if responses.Bool("historical_analysis") {
		perTable := lookup(e.rules.AdditionalRequirements, "historical_analysis_per_workflow", defaultHistoricalPerTable)
		days += responses.TableCount() * perTable
	}
	if responses.Bool("system_integration") {
		days += lookup(e.rules.AdditionalRequirements, "system_integration", defaultSystemIntegration)
	}

	return days
}

func lookup(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}
