// internal/calculator/validate.go
package calculator

import (
	"fmt"
	"strings"

	"dq-calculator/internal/common/config"
	"dq-calculator/internal/models"
)

// quickRequiredQuestions is the fixed whitelist checked in quick-estimate
// mode, ignoring tier-based applicability.
var quickRequiredQuestions = []string{
	"tables_count",
	"workflow_complexity",
	"data_sources",
	"existing_rules",
}

// ValidateResponses checks every question visible at the given complexity
// level. It returns a question-id to message map; an empty map means valid.
// Validation never halts computation: callers decide whether to proceed.
func (e *Engine) ValidateResponses(responses models.Responses, level string) (map[string]string, error) {
	visible, err := e.cfg.QuestionsForLevel(level)
	if err != nil {
		return nil, err
	}
	return e.validateQuestions(responses, visible, true), nil
}

// ValidateQuickResponses restricts the required-field check to the quick
// whitelist, for the abbreviated entry flow.
func (e *Engine) ValidateQuickResponses(responses models.Responses) map[string]string {
	return e.validateQuestions(responses, quickRequiredQuestions, false)
}

func (e *Engine) validateQuestions(responses models.Responses, ids []string, checkVisibility bool) map[string]string {
	errors := make(map[string]string)

	for _, id := range ids {
		q, ok := e.cfg.Questions[id]
		if !ok {
			continue
		}

		if responses.Has(id) {
			if msg := e.validateValue(id, q, responses); msg != "" {
				errors[id] = msg
			}
			continue
		}

		// A question hidden by an unmet dependency is not required.
		if checkVisibility && !e.cfg.ShouldShowQuestion(id, responses) {
			continue
		}
		if !q.Optional {
			errors[id] = "This field is required"
		}
	}

	return errors
}

func (e *Engine) validateValue(id string, q config.Question, responses models.Responses) string {
	switch q.Type {
	case config.QuestionTypeNumber:
		n, ok := responses.Float(id)
		if !ok || n < 0 {
			return "Must be a positive number"
		}
		if q.MinValue != nil && n < *q.MinValue {
			return fmt.Sprintf("Must be at least %v", *q.MinValue)
		}
		if q.MaxValue != nil && n > *q.MaxValue {
			return fmt.Sprintf("Must be at most %v", *q.MaxValue)
		}

	case config.QuestionTypeSelect, config.QuestionTypeRadio:
		if len(q.Options) == 0 {
			return ""
		}
		s, ok := responses.String(id)
		if !ok || !q.HasOption(s) {
			return "Must be one of: " + strings.Join(q.Options, ", ")
		}
	}

	return ""
}
