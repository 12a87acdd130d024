// internal/report/export.go
package report

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"

	apperrors "dq-calculator/internal/common/errors"
	"dq-calculator/internal/models"
)

const calculatorVersion = "2.0"

// Envelope is the structured export schema.
type Envelope struct {
	Metadata         Metadata                 `json:"metadata"`
	ProjectDetails   map[string]ProjectDetail `json:"project_details"`
	Results          Results                  `json:"results"`
	CalculationRules RulesEcho                `json:"calculation_rules"`
	QuestionsConfig  map[string]QuestionMeta  `json:"questions_config,omitempty"`
}

// Metadata identifies when and from which configuration the export was made.
type Metadata struct {
	GeneratedDate     string `json:"generated_date"`
	CalculatorVersion string `json:"calculator_version"`
	ConfigurationFile string `json:"configuration_file"`
	ReportID          string `json:"report_id"`
}

// ProjectDetail is one cleaned response: the question text, the raw value
// and the declaring section.
type ProjectDetail struct {
	Question string `json:"question"`
	Value    any    `json:"value"`
	Section  string `json:"section"`
}

// Results carries the computed figures, breakdown rounded to one decimal.
type Results struct {
	TotalDays int                `json:"total_days"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// RulesEcho repeats the constants that anchored the calculation.
type RulesEcho struct {
	BaseServiceDays    int `json:"base_service_days"`
	MinimumProjectDays int `json:"minimum_project_days"`
}

// QuestionMeta describes a question for the optional metadata block.
type QuestionMeta struct {
	Label           string `json:"label"`
	Type            string `json:"type"`
	Section         string `json:"section"`
	ComplexityLevel string `json:"complexity_level"`
	Optional        bool   `json:"optional"`
}

// ExportData assembles the complete export envelope.
func (g *Generator) ExportData(responses models.Responses, totalDays int, breakdown *models.Breakdown) Envelope {
	env := Envelope{
		Metadata: Metadata{
			GeneratedDate:     g.now().Format(g.cfg.Export.TimestampFormat),
			CalculatorVersion: calculatorVersion,
			ConfigurationFile: g.cfgFile,
			ReportID:          uuid.NewString(),
		},
		ProjectDetails: g.cleanResponses(responses),
		Results: Results{
			TotalDays: totalDays,
			Breakdown: roundedBreakdown(breakdown),
		},
		CalculationRules: RulesEcho{
			BaseServiceDays:    g.cfg.CalculationRules.BaseServiceDays,
			MinimumProjectDays: g.cfg.CalculationRules.MinimumProjectDays,
		},
	}

	if g.cfg.Export.IncludeMetadata {
		env.QuestionsConfig = g.questionsMetadata()
	}
	return env
}

// JSONExport renders the envelope as indented JSON. A failure here is local
// to this format and leaves the computed results untouched.
func (g *Generator) JSONExport(responses models.Responses, totalDays int, breakdown *models.Breakdown) ([]byte, error) {
	data, err := json.MarshalIndent(g.ExportData(responses, totalDays, breakdown), "", "  ")
	if err != nil {
		return nil, apperrors.NewReportGenerationFailedError("json", err)
	}
	return data, nil
}

func (g *Generator) cleanResponses(responses models.Responses) map[string]ProjectDetail {
	cleaned := make(map[string]ProjectDetail, len(responses))
	for id, value := range responses {
		if q, ok := g.cfg.Questions[id]; ok {
			cleaned[id] = ProjectDetail{Question: q.Label, Value: value, Section: q.Section}
			continue
		}
		// Legacy question ids have no declaration; derive a readable label.
		cleaned[id] = ProjectDetail{Question: titleFromID(id), Value: value, Section: "Legacy"}
	}
	return cleaned
}

func (g *Generator) questionsMetadata() map[string]QuestionMeta {
	meta := make(map[string]QuestionMeta, len(g.cfg.Questions))
	for id, q := range g.cfg.Questions {
		meta[id] = QuestionMeta{
			Label:           q.Label,
			Type:            q.Type,
			Section:         q.Section,
			ComplexityLevel: q.ComplexityLevel,
			Optional:        q.Optional,
		}
	}
	return meta
}

func roundedBreakdown(breakdown *models.Breakdown) map[string]float64 {
	out := make(map[string]float64, breakdown.Len())
	for _, item := range breakdown.Items() {
		out[item.Component] = math.Round(item.Days*10) / 10
	}
	return out
}

func titleFromID(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
