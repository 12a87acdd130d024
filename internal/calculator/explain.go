// internal/calculator/explain.go
package calculator

import (
	"fmt"
	"strings"

	"dq-calculator/internal/models"
)

// Explanation renders a step-by-step description of how a breakdown was
// produced, for display next to the estimate. Text only, no recomputation.
func (e *Engine) Explanation(responses models.Responses, breakdown *models.Breakdown) string {
	var sb strings.Builder
	sb.WriteString("Calculation Breakdown:\n\n")

	tables := responses.TableCount()
	fmt.Fprintf(&sb, "Project Scope: %.0f table(s)/workflow(s)\n\n", tables)

	for _, item := range breakdown.Items() {
		fmt.Fprintf(&sb, "- %s: %.1f days\n", item.Component, item.Days)

		switch item.Component {
		case models.ComponentBaseService:
			sb.WriteString("  Core DQ methodology implementation\n")
		case models.ComponentWorkflowComplexity:
			label, ok := responses.String("workflow_complexity")
			if !ok {
				label = "Simple (single table/report)"
			}
			if tables > 0 {
				fmt.Fprintf(&sb, "  %s: %.0f x %.1f days each\n", label, tables, item.Days/tables)
			}
		case models.ComponentDataIntegration:
			fmt.Fprintf(&sb, "  %s\n", responses.ResolveString("data_sources", "integration_complexity", ""))
		case models.ComponentRulesDevelopment:
			fmt.Fprintf(&sb, "  Rules status: %s\n", responses.ResolveString("existing_rules", "dq_rules_status", ""))
		}
	}

	fmt.Fprintf(&sb, "\nTotal Estimated Days: %d days\n", int(breakdown.Sum()))
	fmt.Fprintf(&sb, "Minimum Project Threshold: %d days\n", e.rules.MinimumProjectDays)

	return sb.String()
}
