// internal/models/estimate.go
package models

// Breakdown component names, in the fixed evaluation order used by the engine.
const (
	ComponentBaseService            = "Base Service (Phases 0-3)"
	ComponentWorkflowComplexity     = "Workflow Complexity"
	ComponentDataIntegration        = "Data Integration"
	ComponentRulesDevelopment       = "DQ Rules Development"
	ComponentDataVolumeImpact       = "Data Volume Impact"
	ComponentToolSetup              = "Tool Setup"
	ComponentCloudIntegration       = "Cloud Integration"
	ComponentAdditionalRequirements = "Additional Requirements"
)

// BreakdownItem is one component's contribution to the estimate, in days.
type BreakdownItem struct {
	Component string  `json:"component"`
	Days      float64 `json:"days"`
}

// Breakdown is an ordered list of non-zero component contributions.
// Order follows the engine's evaluation order, not alphabetical or by size.
type Breakdown struct {
	items []BreakdownItem
}

// Add appends a component contribution. Zero and negative contributions are
// dropped so the breakdown only carries components that actually cost days.
func (b *Breakdown) Add(component string, days float64) {
	if days <= 0 {
		return
	}
	b.items = append(b.items, BreakdownItem{Component: component, Days: days})
}

// Items returns the contributions in evaluation order.
func (b *Breakdown) Items() []BreakdownItem {
	return b.items
}

// Get returns the days for a component, or 0 when the component is absent.
func (b *Breakdown) Get(component string) float64 {
	for _, item := range b.items {
		if item.Component == component {
			return item.Days
		}
	}
	return 0
}

// Sum returns the unrounded total of all contributions.
func (b *Breakdown) Sum() float64 {
	var total float64
	for _, item := range b.items {
		total += item.Days
	}
	return total
}

// Len returns the number of non-zero components.
func (b *Breakdown) Len() int {
	return len(b.items)
}

// Map returns the breakdown as a plain component->days map, for export.
func (b *Breakdown) Map() map[string]float64 {
	out := make(map[string]float64, len(b.items))
	for _, item := range b.items {
		out[item.Component] = item.Days
	}
	return out
}
