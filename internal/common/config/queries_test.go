// internal/common/config/queries_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "dq-calculator/internal/common/errors"
	"dq-calculator/internal/models"
)

func createQueryConfig() *Config {
	return &Config{
		ComplexityLevels: map[string]ComplexityLevel{
			"basic": {
				Title:         "Basic",
				ShowQuestions: []string{"tables_count", "workflow_complexity"},
			},
			"advanced": {
				Title:         "Advanced",
				ShowQuestions: ShowAllQuestions,
			},
		},
		Questions: map[string]Question{
			"tables_count": {
				Label:   "How many tables?",
				Type:    QuestionTypeNumber,
				Section: "Project Setup",
			},
			"workflow_complexity": {
				Label:   "Workflow complexity",
				Type:    QuestionTypeSelect,
				Section: "Project Setup",
			},
			"data_volume": {
				Label:   "Data volume",
				Type:    QuestionTypeSelect,
				Section: "Data Landscape",
			},
			"commercial_tool": {
				Label:   "Commercial DQ tool",
				Type:    QuestionTypeSelect,
				Section: "Tooling & Platform",
				Options: []string{"Already have tool", "No commercial tool"},
			},
			"tool_installation": {
				Label:        "Installation service",
				Type:         QuestionTypeRadio,
				Section:      "Tooling & Platform",
				DependsOn:    "commercial_tool",
				DependsValue: "No commercial tool",
			},
			"extra_notes": {
				Label:   "Notes",
				Type:    QuestionTypeSelect,
				Section: "Undeclared Section",
			},
		},
		UISections: []UISection{
			{Name: "Project Setup"},
			{Name: "Data Landscape"},
			{Name: "Tooling & Platform"},
		},
	}
}

func TestQuestionsForLevelExplicitList(t *testing.T) {
	cfg := createQueryConfig()

	ids, err := cfg.QuestionsForLevel("basic")
	require.NoError(t, err)
	assert.Equal(t, []string{"tables_count", "workflow_complexity"}, ids)
}

func TestQuestionsForLevelAllMarker(t *testing.T) {
	cfg := createQueryConfig()

	ids, err := cfg.QuestionsForLevel("advanced")
	require.NoError(t, err)

	// Section declaration order, identifier order within a section,
	// undeclared sections last.
	assert.Equal(t, []string{
		"tables_count",
		"workflow_complexity",
		"data_volume",
		"commercial_tool",
		"tool_installation",
		"extra_notes",
	}, ids)
}

func TestQuestionsForLevelUnknown(t *testing.T) {
	cfg := createQueryConfig()

	_, err := cfg.QuestionsForLevel("expert")
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeUnknownComplexityLevel, stdErr.Code)
}

func TestQuestionsBySection(t *testing.T) {
	cfg := createQueryConfig()

	sections, err := cfg.QuestionsBySection("advanced")
	require.NoError(t, err)

	require.Len(t, sections, 3)
	assert.Equal(t, "Project Setup", sections[0].Section.Name)
	assert.Equal(t, []string{"tables_count", "workflow_complexity"}, sections[0].QuestionIDs)
	assert.Equal(t, "Data Landscape", sections[1].Section.Name)
	assert.Equal(t, []string{"data_volume"}, sections[1].QuestionIDs)
	assert.Equal(t, "Tooling & Platform", sections[2].Section.Name)
	assert.Equal(t, []string{"commercial_tool", "tool_installation"}, sections[2].QuestionIDs)
}

func TestQuestionsBySectionOmitsEmptySections(t *testing.T) {
	cfg := createQueryConfig()

	sections, err := cfg.QuestionsBySection("basic")
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "Project Setup", sections[0].Section.Name)
}

func TestShouldShowQuestion(t *testing.T) {
	cfg := createQueryConfig()

	assert.True(t, cfg.ShouldShowQuestion("tables_count", models.Responses{}))

	assert.False(t, cfg.ShouldShowQuestion("tool_installation", models.Responses{}))
	assert.False(t, cfg.ShouldShowQuestion("tool_installation", models.Responses{
		"commercial_tool": "Already have tool",
	}))
	assert.True(t, cfg.ShouldShowQuestion("tool_installation", models.Responses{
		"commercial_tool": "No commercial tool",
	}))

	assert.False(t, cfg.ShouldShowQuestion("undeclared_question", models.Responses{}))
}

func TestValidateConfigAccumulates(t *testing.T) {
	cfg := createQueryConfig()
	q := cfg.Questions["tool_installation"]
	q.DependsValue = "Not an option"
	cfg.Questions["tool_installation"] = q
	cfg.Questions["orphan"] = Question{
		Label:   "Orphan",
		Type:    QuestionTypeCheckbox,
		Section: "Nowhere",
	}
	lv := cfg.ComplexityLevels["basic"]
	lv.ShowQuestions = []string{"tables_count", "missing_question"}
	cfg.ComplexityLevels["basic"] = lv
	applyDefaults(cfg)

	problems := validateConfig(cfg)

	assert.Contains(t, problems,
		"question 'tool_installation' depends on value 'Not an option' not in options for 'commercial_tool'")
	assert.Contains(t, problems, "missing UI section definition: Nowhere")
	assert.Contains(t, problems, "missing UI section definition: Undeclared Section")
	assert.Contains(t, problems,
		"complexity level 'basic' references undefined question 'missing_question'")
}

func TestValidateConfigRejectsWrongShowQuestionsType(t *testing.T) {
	cfg := createQueryConfig()
	lv := cfg.ComplexityLevels["basic"]
	lv.ShowQuestions = 42
	cfg.ComplexityLevels["basic"] = lv
	applyDefaults(cfg)

	problems := validateConfig(cfg)

	assert.Contains(t, problems,
		"complexity level 'basic': show_questions must be a list of question ids or 'all'")
}
