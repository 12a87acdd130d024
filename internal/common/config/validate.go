// internal/common/config/validate.go
package config

import (
	"fmt"
	"sort"
)

var validQuestionTypes = map[string]bool{
	QuestionTypeNumber:   true,
	QuestionTypeSelect:   true,
	QuestionTypeRadio:    true,
	QuestionTypeCheckbox: true,
}

// validateConfig runs structural validation over the whole graph and
// accumulates every violation instead of stopping at the first, so a config
// author sees all problems in one pass.
func validateConfig(cfg *Config) []string {
	var problems []string

	questionIDs := sortedKeys(cfg.Questions)
	for _, id := range questionIDs {
		problems = append(problems, validateQuestion(id, cfg.Questions[id], cfg)...)
	}

	problems = append(problems, validateRules(&cfg.CalculationRules)...)

	// Every question section needs a matching UI section declaration.
	declared := make(map[string]bool, len(cfg.UISections))
	for _, s := range cfg.UISections {
		declared[s.Name] = true
	}
	missing := make(map[string]bool)
	for _, id := range questionIDs {
		section := cfg.Questions[id].Section
		if !declared[section] && !missing[section] {
			missing[section] = true
		}
	}
	for _, section := range sortedKeys(missing) {
		problems = append(problems, fmt.Sprintf("missing UI section definition: %s", section))
	}

	// Tier question lists may only reference declared questions.
	for _, level := range sortedKeys(cfg.ComplexityLevels) {
		lv := cfg.ComplexityLevels[level]
		if lv.ShowsAll() {
			continue
		}
		if lv.ShowQuestions != nil && lv.QuestionIDs() == nil {
			problems = append(problems, fmt.Sprintf(
				"complexity level '%s': show_questions must be a list of question ids or '%s'", level, ShowAllQuestions))
			continue
		}
		for _, qid := range lv.QuestionIDs() {
			if _, ok := cfg.Questions[qid]; !ok {
				problems = append(problems, fmt.Sprintf(
					"complexity level '%s' references undefined question '%s'", level, qid))
			}
		}
	}

	return problems
}

func validateQuestion(id string, q Question, cfg *Config) []string {
	var problems []string

	if !validQuestionTypes[q.Type] {
		problems = append(problems, fmt.Sprintf("question '%s': invalid question type '%s'", id, q.Type))
	}

	if len(cfg.ComplexityLevels) > 0 {
		if _, ok := cfg.ComplexityLevels[q.ComplexityLevel]; !ok {
			problems = append(problems, fmt.Sprintf(
				"question '%s': invalid complexity level '%s'", id, q.ComplexityLevel))
		}
	}

	if q.Type == QuestionTypeNumber {
		switch {
		case q.MinValue == nil || q.MaxValue == nil:
			problems = append(problems, fmt.Sprintf(
				"question '%s': number input requires min_value and max_value", id))
		case *q.MinValue >= *q.MaxValue:
			problems = append(problems, fmt.Sprintf(
				"question '%s': min_value must be less than max_value", id))
		}
	}

	if q.IsChoice() && len(q.Options) < 2 {
		problems = append(problems, fmt.Sprintf(
			"question '%s': %s requires at least 2 options", id, q.Type))
	}

	if q.DependsOn != "" {
		if q.DependsValue == "" {
			problems = append(problems, fmt.Sprintf(
				"question '%s': depends_on requires depends_value", id))
		}
		target, ok := cfg.Questions[q.DependsOn]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf(
				"question '%s' depends on undefined question '%s'", id, q.DependsOn))
		case q.DependsValue != "" && !target.HasOption(q.DependsValue):
			problems = append(problems, fmt.Sprintf(
				"question '%s' depends on value '%s' not in options for '%s'", id, q.DependsValue, q.DependsOn))
		}
	}

	return problems
}

func validateRules(r *CalculationRules) []string {
	var problems []string

	if r.BaseServiceDays <= 0 {
		problems = append(problems, "base_service_days must be positive")
	}
	if r.MinimumProjectDays <= 0 {
		problems = append(problems, "minimum_project_days must be positive")
	}
	if r.BaseServiceDays < r.MinimumProjectDays {
		problems = append(problems, "base_service_days should be >= minimum_project_days")
	}
	if r.RulesOverhead.BaseRulesIncluded < 0 {
		problems = append(problems, "rules_overhead.base_rules_included must not be negative")
	}
	if r.RulesOverhead.AdditionalRulesPer5 < 0 {
		problems = append(problems, "rules_overhead.additional_rules_per_5 must not be negative")
	}

	tables := []map[string]float64{
		r.WorkflowMultipliers,
		r.IntegrationComplexity,
		r.IntegrationComplexityLegacy,
		r.DataVolumeMultipliers,
		r.ExistingRulesImpact,
		r.ToolSetup,
		r.InstallationService,
		r.CloudIntegration,
		r.AdditionalRequirements,
	}
	for _, table := range tables {
		for _, key := range sortedKeys(table) {
			if table[key] < 0 {
				problems = append(problems, fmt.Sprintf(
					"negative multiplier not allowed: %s = %v", key, table[key]))
			}
		}
	}

	return problems
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
