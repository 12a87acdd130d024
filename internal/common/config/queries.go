// internal/common/config/queries.go
package config

import (
	"sort"

	apperrors "dq-calculator/internal/common/errors"
	"dq-calculator/internal/models"
)

// SectionQuestions pairs a declared UI section with the question identifiers
// it contains, in a stable order.
type SectionQuestions struct {
	Section     UISection
	QuestionIDs []string
}

// QuestionsForLevel returns the ordered question identifiers visible at a
// complexity level, expanding the "all" marker to every declared question.
func (c *Config) QuestionsForLevel(level string) ([]string, error) {
	lv, ok := c.ComplexityLevels[level]
	if !ok {
		return nil, apperrors.NewUnknownComplexityLevelError(level)
	}
	if lv.ShowsAll() {
		return c.allQuestionIDs(), nil
	}
	return lv.QuestionIDs(), nil
}

// QuestionsBySection groups the level's visible questions by declared
// section, preserving section declaration order.
func (c *Config) QuestionsBySection(level string) ([]SectionQuestions, error) {
	visible, err := c.QuestionsForLevel(level)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]bool, len(visible))
	for _, id := range visible {
		allowed[id] = true
	}

	grouped := make(map[string][]string)
	for _, id := range sortedKeys(c.Questions) {
		if allowed[id] {
			section := c.Questions[id].Section
			grouped[section] = append(grouped[section], id)
		}
	}

	var out []SectionQuestions
	for _, section := range c.UISections {
		if ids := grouped[section.Name]; len(ids) > 0 {
			out = append(out, SectionQuestions{Section: section, QuestionIDs: ids})
		}
	}
	return out, nil
}

// ShouldShowQuestion reports whether a question is applicable given the
// responses recorded so far. True unless the question declares a dependency
// whose referenced value is absent or mismatched.
func (c *Config) ShouldShowQuestion(id string, responses models.Responses) bool {
	q, ok := c.Questions[id]
	if !ok {
		return false
	}
	if q.DependsOn == "" {
		return true
	}
	v, ok := responses[q.DependsOn]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && s == q.DependsValue
}

// allQuestionIDs expands the "all" marker: questions ordered by section
// declaration order, then by identifier within a section. Questions in
// undeclared sections come last.
func (c *Config) allQuestionIDs() []string {
	sectionRank := make(map[string]int, len(c.UISections))
	for i, s := range c.UISections {
		sectionRank[s.Name] = i
	}

	ids := sortedKeys(c.Questions)
	sort.SliceStable(ids, func(i, j int) bool {
		ri, oki := sectionRank[c.Questions[ids[i]].Section]
		rj, okj := sectionRank[c.Questions[ids[j]].Section]
		if oki != okj {
			return oki
		}
		return ri < rj
	})
	return ids
}
