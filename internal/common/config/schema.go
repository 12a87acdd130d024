// internal/common/config/schema.go
package config

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the shape check applied to the raw configuration
// document before struct mapping. It catches wrongly-typed top-level
// sections early; reference integrity is handled by validateConfig.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"app_config":            map[string]any{"type": "object"},
		"complexity_levels":     map[string]any{"type": "object"},
		"quick_estimate_config": map[string]any{"type": "object"},
		"questions":             map[string]any{"type": "object"},
		"calculation_rules": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"base_service_days":             map[string]any{"type": "number"},
				"additional_service_days":       map[string]any{"type": "number"},
				"minimum_project_days":          map[string]any{"type": "number"},
				"workflow_multipliers":          map[string]any{"type": "object"},
				"integration_complexity":        map[string]any{"type": "object"},
				"integration_complexity_legacy": map[string]any{"type": "object"},
				"data_volume_multipliers":       map[string]any{"type": "object"},
				"rules_overhead":                map[string]any{"type": "object"},
				"existing_rules_impact":         map[string]any{"type": "object"},
				"tool_setup":                    map[string]any{"type": "object"},
				"installation_service":          map[string]any{"type": "object"},
				"cloud_integration":             map[string]any{"type": "object"},
				"additional_requirements":       map[string]any{"type": "object"},
			},
		},
		"pricing_config":     map[string]any{"type": "object"},
		"security_config":    map[string]any{"type": "object"},
		"export_config":      map[string]any{"type": "object"},
		"report_config":      map[string]any{"type": "object"},
		"ui_sections":        map[string]any{"type": "array"},
		"methodology_phases": map[string]any{"type": "object"},
	},
}

// checkDocument validates the raw document against documentSchema and
// returns every violation found. A schema engine failure is itself reported
// as a violation rather than aborting the pass.
func checkDocument(raw map[string]any) []string {
	schemaLoader := gojsonschema.NewGoLoader(documentSchema)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("document schema check failed: %v", err)}
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("document: %s: %s", desc.Field(), desc.Description()))
	}
	return problems
}
