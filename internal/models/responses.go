// internal/models/responses.go
package models

// Responses holds one estimation run's answers, keyed by question identifier.
// Values are whatever the presentation layer collected: numbers, choice labels,
// or booleans. Missing keys are legal; the engine falls back to defaults.
type Responses map[string]any

// Has reports whether a question has a recorded answer.
func (r Responses) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Float reads a numeric answer, accepting the numeric types JSON and YAML
// decoders produce. Returns (0, false) for missing or non-numeric values.
func (r Responses) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// String reads a choice-label answer. Returns ("", false) when missing or not
// a string.
func (r Responses) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool reads a boolean answer. Any missing or non-boolean value reads as false.
func (r Responses) Bool(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// ResolveFloat implements the current-key/legacy-key/default fallback chain
// used throughout the calculation rules, so older response shapes stay
// computable without migration.
func (r Responses) ResolveFloat(primary, legacy string, def float64) float64 {
	if v, ok := r.Float(primary); ok {
		return v
	}
	if v, ok := r.Float(legacy); ok {
		return v
	}
	return def
}

// ResolveString is the string-valued variant of ResolveFloat.
func (r Responses) ResolveString(primary, legacy, def string) string {
	if v, ok := r.String(primary); ok {
		return v
	}
	if v, ok := r.String(legacy); ok {
		return v
	}
	return def
}

// TableCount resolves the project scope quantity shared by most components:
// tables_count first, the legacy num_workflows second, 1 as the last resort.
func (r Responses) TableCount() float64 {
	return r.ResolveFloat("tables_count", "num_workflows", 1)
}
