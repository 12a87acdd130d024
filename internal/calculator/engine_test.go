// internal/calculator/engine_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dq-calculator/internal/common/config"
	"dq-calculator/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestRules() config.CalculationRules {
	return config.CalculationRules{
		BaseServiceDays:    9,
		MinimumProjectDays: 5,
		WorkflowMultipliers: map[string]float64{
			"Complex (multiple tables/joins)": 4.0,
		},
		IntegrationComplexity: map[string]float64{
			"Complex integration (4+ sources)": 3.0,
		},
		ExistingRulesImpact: map[string]float64{
			"Not documented": 5.0,
		},
		RulesOverhead: config.RulesOverhead{
			BaseRulesIncluded:   20,
			AdditionalRulesPer5: 0.5,
		},
		AdditionalRequirements: map[string]float64{
			"governance_setup": 3.0,
		},
	}
}

func createTestEngine(rules config.CalculationRules) *Engine {
	return NewEngine(&config.Config{CalculationRules: rules})
}

func createScenarioResponses() models.Responses {
	return models.Responses{
		"tables_count":        3,
		"workflow_complexity": "Complex (multiple tables/joins)",
		"data_sources":        "Complex integration (4+ sources)",
		"existing_rules":      "Not documented",
		"commercial_tool":     "No commercial tool",
		"governance_maturity": false,
	}
}

// ==========================
// Tests
// ==========================

func TestCalculateWorkingDaysEndToEnd(t *testing.T) {
	engine := createTestEngine(createTestRules())

	total, breakdown := engine.CalculateWorkingDays(createScenarioResponses())

	assert.Equal(t, 38, total)
	assert.Equal(t, 9.0, breakdown.Get(models.ComponentBaseService))
	assert.Equal(t, 12.0, breakdown.Get(models.ComponentWorkflowComplexity))
	assert.Equal(t, 9.0, breakdown.Get(models.ComponentDataIntegration))
	assert.Equal(t, 5.0, breakdown.Get(models.ComponentRulesDevelopment))
	assert.Equal(t, 3.0, breakdown.Get(models.ComponentAdditionalRequirements))
	assert.Zero(t, breakdown.Get(models.ComponentToolSetup))
	assert.Zero(t, breakdown.Get(models.ComponentCloudIntegration))
	assert.Zero(t, breakdown.Get(models.ComponentDataVolumeImpact))
}

func TestBreakdownOrderFollowsEvaluationOrder(t *testing.T) {
	engine := createTestEngine(createTestRules())

	_, breakdown := engine.CalculateWorkingDays(createScenarioResponses())

	var names []string
	for _, item := range breakdown.Items() {
		names = append(names, item.Component)
	}
	assert.Equal(t, []string{
		models.ComponentBaseService,
		models.ComponentWorkflowComplexity,
		models.ComponentDataIntegration,
		models.ComponentRulesDevelopment,
		models.ComponentAdditionalRequirements,
	}, names)
}

func TestDeterminism(t *testing.T) {
	engine := createTestEngine(createTestRules())
	responses := createScenarioResponses()

	total1, breakdown1 := engine.CalculateWorkingDays(responses)
	total2, breakdown2 := engine.CalculateWorkingDays(responses)

	assert.Equal(t, total1, total2)
	assert.Equal(t, breakdown1.Items(), breakdown2.Items())
}

func TestMonotonicityInTableCount(t *testing.T) {
	engine := createTestEngine(createTestRules())

	prev := 0
	for tables := 1; tables <= 10; tables++ {
		responses := createScenarioResponses()
		responses["tables_count"] = tables

		total, _ := engine.CalculateWorkingDays(responses)
		assert.GreaterOrEqual(t, total, prev, "tables_count=%d", tables)
		prev = total
	}
}

func TestLegacyNumWorkflowsEquivalence(t *testing.T) {
	engine := createTestEngine(createTestRules())

	current := createScenarioResponses()
	legacy := createScenarioResponses()
	delete(legacy, "tables_count")
	legacy["num_workflows"] = 3

	totalCurrent, breakdownCurrent := engine.CalculateWorkingDays(current)
	totalLegacy, breakdownLegacy := engine.CalculateWorkingDays(legacy)

	assert.Equal(t, totalCurrent, totalLegacy)
	assert.Equal(t, breakdownCurrent.Items(), breakdownLegacy.Items())
}

func TestLegacyResponseKeys(t *testing.T) {
	rules := createTestRules()
	rules.InstallationService = map[string]float64{
		"Yes, please provide installation": 10.0,
	}
	engine := createTestEngine(rules)

	responses := models.Responses{
		"tables_count":           1,
		"integration_complexity": "Complex integration (4+ sources)",
		"dq_rules_status":        "Not documented",
		"datawash_installation":  "Yes, please provide installation",
	}
	_, breakdown := engine.CalculateWorkingDays(responses)

	assert.Equal(t, 3.0, breakdown.Get(models.ComponentDataIntegration))
	assert.Equal(t, 5.0, breakdown.Get(models.ComponentRulesDevelopment))
	assert.Equal(t, 10.0, breakdown.Get(models.ComponentToolSetup))
}

func TestRulesOverheadStepFunction(t *testing.T) {
	tests := []struct {
		name       string
		rulesCount int
		expected   float64
	}{
		{"at included threshold", 20, 5.0},
		{"one over threshold costs a full block", 21, 5.5},
		{"block boundary", 25, 5.5},
		{"second block", 26, 6.0},
	}

	engine := createTestEngine(createTestRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := models.Responses{
				"tables_count":        1,
				"existing_rules":      "Not documented",
				"rules_count":         tt.rulesCount,
				"governance_maturity": true,
			}
			_, breakdown := engine.CalculateWorkingDays(responses)
			assert.Equal(t, tt.expected, breakdown.Get(models.ComponentRulesDevelopment))
		})
	}
}

func TestMinimumProjectDaysFloor(t *testing.T) {
	// Base below the minimum and every other component zeroed: the floor
	// dominates, and the breakdown is not rescaled to match.
	rules := config.CalculationRules{
		BaseServiceDays:    3,
		MinimumProjectDays: 5,
		WorkflowMultipliers: map[string]float64{
			"Simple (single table/report)": 0.0,
		},
		ExistingRulesImpact: map[string]float64{
			"Well documented": 0.0,
		},
		AdditionalRequirements: map[string]float64{
			"governance_setup": 0.0,
		},
	}
	engine := createTestEngine(rules)

	responses := models.Responses{
		"tables_count":        1,
		"workflow_complexity": "Simple (single table/report)",
		"existing_rules":      "Well documented",
	}
	total, breakdown := engine.CalculateWorkingDays(responses)

	assert.Equal(t, 5, total)
	assert.Equal(t, 3.0, breakdown.Sum())
}

func TestDefaultFloorForMinimalResponses(t *testing.T) {
	engine := createTestEngine(createTestRules())

	total, breakdown := engine.CalculateWorkingDays(models.Responses{"tables_count": 1})

	rules := createTestRules()
	assert.GreaterOrEqual(t, total, rules.BaseServiceDays)
	assert.GreaterOrEqual(t, total, rules.MinimumProjectDays)
	assert.Equal(t, float64(rules.BaseServiceDays), breakdown.Get(models.ComponentBaseService))
}

func TestUnresolvedWorkflowLabelFallsBack(t *testing.T) {
	engine := createTestEngine(createTestRules())

	responses := models.Responses{
		"tables_count":        2,
		"workflow_complexity": "Never seen this label",
		"governance_maturity": true,
	}
	_, breakdown := engine.CalculateWorkingDays(responses)

	// Unknown workflow labels fall back to the 2.0 multiplier.
	assert.Equal(t, 4.0, breakdown.Get(models.ComponentWorkflowComplexity))
}

func TestUnresolvedIntegrationLabelContributesNothing(t *testing.T) {
	engine := createTestEngine(createTestRules())

	responses := models.Responses{
		"tables_count": 4,
		"data_sources": "Never seen this label",
	}
	_, breakdown := engine.CalculateWorkingDays(responses)

	assert.Zero(t, breakdown.Get(models.ComponentDataIntegration))
}

func TestGovernancePolarity(t *testing.T) {
	engine := createTestEngine(createTestRules())

	withGovernance := models.Responses{"tables_count": 1, "governance_maturity": true}
	withoutGovernance := models.Responses{"tables_count": 1, "governance_maturity": false}

	_, b1 := engine.CalculateWorkingDays(withGovernance)
	_, b2 := engine.CalculateWorkingDays(withoutGovernance)

	// The absence of governance maturity is what costs extra.
	assert.Zero(t, b1.Get(models.ComponentAdditionalRequirements))
	assert.Equal(t, 3.0, b2.Get(models.ComponentAdditionalRequirements))
}

func TestAdditionalRequirementsScaling(t *testing.T) {
	rules := createTestRules()
	rules.AdditionalRequirements = map[string]float64{
		"governance_setup":                 0.0,
		"compliance":                       2.0,
		"historical_analysis_per_workflow": 2.0,
		"system_integration":               3.0,
	}
	engine := createTestEngine(rules)

	responses := models.Responses{
		"tables_count":        3,
		"governance_maturity": true,
		"compliance_req":      true,
		"historical_analysis": true,
		"system_integration":  true,
	}
	_, breakdown := engine.CalculateWorkingDays(responses)

	// compliance 2 + historical 3x2 + system integration 3
	assert.Equal(t, 11.0, breakdown.Get(models.ComponentAdditionalRequirements))
}

func TestDataVolumeOnlyCountsWhenPresent(t *testing.T) {
	rules := createTestRules()
	rules.DataVolumeMultipliers = map[string]float64{
		"Large (>10M records)": 1.0,
	}
	engine := createTestEngine(rules)

	without := models.Responses{"tables_count": 5, "governance_maturity": true}
	with := models.Responses{"tables_count": 5, "governance_maturity": true, "data_volume": "Large (>10M records)"}

	_, b1 := engine.CalculateWorkingDays(without)
	_, b2 := engine.CalculateWorkingDays(with)

	assert.Zero(t, b1.Get(models.ComponentDataVolumeImpact))
	assert.Equal(t, 5.0, b2.Get(models.ComponentDataVolumeImpact))
}

func TestToolSetupLegacyHeuristic(t *testing.T) {
	// Empty tool_setup table: legacy labels use the built-in rates, other
	// labels contribute nothing.
	engine := createTestEngine(createTestRules())

	tests := []struct {
		tool     string
		expected float64
	}{
		{"Have existing DQ tool", 2.0},
		{"Need other tool", 3.0},
		{"No commercial tool", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			responses := models.Responses{
				"tables_count":        1,
				"commercial_tool":     tt.tool,
				"governance_maturity": true,
			}
			_, breakdown := engine.CalculateWorkingDays(responses)
			assert.Equal(t, tt.expected, breakdown.Get(models.ComponentToolSetup))
		})
	}
}

func TestCloudIntegrationLookup(t *testing.T) {
	rules := createTestRules()
	rules.CloudIntegration = map[string]float64{
		"Azure":          2.0,
		"Not applicable": 0.0,
	}
	engine := createTestEngine(rules)

	responses := models.Responses{"tables_count": 1, "cloud_platform": "Azure", "governance_maturity": true}
	_, breakdown := engine.CalculateWorkingDays(responses)
	assert.Equal(t, 2.0, breakdown.Get(models.ComponentCloudIntegration))

	responses["cloud_platform"] = "Not applicable"
	_, breakdown = engine.CalculateWorkingDays(responses)
	assert.Zero(t, breakdown.Get(models.ComponentCloudIntegration))
}

func TestExplanationMentionsEveryComponent(t *testing.T) {
	engine := createTestEngine(createTestRules())
	responses := createScenarioResponses()

	total, breakdown := engine.CalculateWorkingDays(responses)
	require.Equal(t, 38, total)

	text := engine.Explanation(responses, breakdown)
	for _, item := range breakdown.Items() {
		assert.Contains(t, text, item.Component)
	}
	assert.Contains(t, text, "3 table(s)/workflow(s)")
}

func TestProjectTimeline(t *testing.T) {
	solo := ProjectTimeline(38, 1)
	assert.Equal(t, 7.6, solo.SequentialWeeks)
	assert.Equal(t, 1, solo.TeamSize)
	assert.Zero(t, solo.ParallelWeeks)

	team := ProjectTimeline(38, 2)
	assert.Equal(t, 7.6, team.SequentialWeeks)
	assert.Equal(t, 3.8, team.ParallelWeeks)
	assert.Equal(t, 38, team.TotalPersonDays)
}
