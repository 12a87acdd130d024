// internal/report/risks.go
package report

import (
	"fmt"
	"strings"

	"dq-calculator/internal/models"
)

// longProjectThresholdDays marks when project duration itself becomes a risk.
const longProjectThresholdDays = 30

// riskAssessment derives project risks and their mitigations from the
// responses and the computed total.
func riskAssessment(responses models.Responses, totalDays int) []string {
	var risks, mitigations []string

	if responses.ResolveString("existing_rules", "dq_rules_status", "") == "Not documented" {
		risks = append(risks, "Existing rules are not documented")
		mitigations = append(mitigations, "Allow additional time for rule documentation and validation")
	}
	if label := responses.ResolveString("data_sources", "integration_complexity", ""); strings.Contains(label, "Multiple") || strings.Contains(label, "Complex") {
		risks = append(risks, "Multi-source integration complexity")
		mitigations = append(mitigations, "Plan alignment sessions with each source system team")
	}
	if !responses.Bool("governance_maturity") {
		risks = append(risks, "No established data governance processes")
		mitigations = append(mitigations, "Include governance setup in the project scope")
	}
	if totalDays > longProjectThresholdDays {
		risks = append(risks, "Long project duration")
		mitigations = append(mitigations, "Split into smaller phases with intermediate deliverables")
	}

	var lines []string
	lines = append(lines, "Identified risks:")
	if len(risks) == 0 {
		lines = append(lines, "No significant risks identified for this project.")
	}
	for i, risk := range risks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, risk))
	}

	lines = append(lines, "", "Mitigation strategies:")
	if len(mitigations) == 0 {
		lines = append(lines, "The project has a low risk profile.")
	}
	for i, mitigation := range mitigations {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, mitigation))
	}

	return lines
}
