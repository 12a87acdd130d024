// internal/common/config/config.go
package config

import "dq-calculator/internal/models"

// Question input types supported by the presentation layer.
const (
	QuestionTypeNumber   = "number_input"
	QuestionTypeSelect   = "selectbox"
	QuestionTypeRadio    = "radio"
	QuestionTypeCheckbox = "checkbox"
)

// ShowAllQuestions is the marker a complexity level uses to expose every
// declared question instead of an explicit list.
const ShowAllQuestions = "all"

// Config is the complete calculator configuration, loaded once at startup.
// Instances are immutable after load; Reload swaps a whole new snapshot.
type Config struct {
	App               AppConfig                   `mapstructure:"app_config"`
	ComplexityLevels  map[string]ComplexityLevel  `mapstructure:"complexity_levels"`
	QuickEstimate     QuickEstimate               `mapstructure:"quick_estimate_config"`
	Questions         map[string]Question         `mapstructure:"questions"`
	CalculationRules  CalculationRules            `mapstructure:"calculation_rules"`
	Pricing           Pricing                     `mapstructure:"pricing_config"`
	Security          Security                    `mapstructure:"security_config"`
	Export            Export                      `mapstructure:"export_config"`
	Report            Report                      `mapstructure:"report_config"`
	UISections        []UISection                 `mapstructure:"ui_sections"`
	MethodologyPhases map[string]MethodologyPhase `mapstructure:"methodology_phases"`
}

// AppConfig carries presentation metadata only.
type AppConfig struct {
	Title        string `mapstructure:"title"`
	Subtitle     string `mapstructure:"subtitle"`
	Description  string `mapstructure:"description"`
	PageIcon     string `mapstructure:"page_icon"`
	Layout       string `mapstructure:"layout"`
	SidebarTitle string `mapstructure:"sidebar_title"`
}

// ComplexityLevel is a named visibility profile selecting which questions
// are shown and validated. ShowQuestions is either an ordered identifier
// list or the literal "all" marker.
type ComplexityLevel struct {
	Title         string `mapstructure:"title"`
	Label         string `mapstructure:"label"`
	Description   string `mapstructure:"description"`
	ShowQuestions any    `mapstructure:"show_questions"`
}

// ShowsAll reports whether the level uses the "all questions" marker.
func (c ComplexityLevel) ShowsAll() bool {
	marker, ok := c.ShowQuestions.(string)
	return ok && marker == ShowAllQuestions
}

// QuestionIDs returns the explicit question list, empty when the level uses
// the "all" marker or declares nothing.
func (c ComplexityLevel) QuestionIDs() []string {
	switch list := c.ShowQuestions.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// QuickEstimate configures the abbreviated entry flow: a handful of core
// questions plus a full default answer set for everything else.
type QuickEstimate struct {
	Title         string                `mapstructure:"title"`
	CoreQuestions []string              `mapstructure:"core_questions"`
	Defaults      QuickEstimateDefaults `mapstructure:"defaults"`
}

// QuickEstimateDefaults is the stand-in answer set applied underneath the
// core questions in quick mode.
type QuickEstimateDefaults struct {
	WorkflowComplexity string `mapstructure:"workflow_complexity"`
	DataSources        string `mapstructure:"data_sources"`
	ExistingRules      string `mapstructure:"existing_rules"`
	CommercialTool     string `mapstructure:"commercial_tool"`
	DataVolume         string `mapstructure:"data_volume"`
	ToolInstallation   string `mapstructure:"tool_installation"`
	ComplianceReq      bool   `mapstructure:"compliance_req"`
	HistoricalAnalysis bool   `mapstructure:"historical_analysis"`
	SystemIntegration  bool   `mapstructure:"system_integration"`
	GovernanceMaturity bool   `mapstructure:"governance_maturity"`
	RulesCount         int    `mapstructure:"rules_count"`
	CloudPlatform      string `mapstructure:"cloud_platform"`
}

// Responses converts the defaults into a response set the engine accepts.
func (d QuickEstimateDefaults) Responses() models.Responses {
	return models.Responses{
		"workflow_complexity": d.WorkflowComplexity,
		"data_sources":        d.DataSources,
		"existing_rules":      d.ExistingRules,
		"commercial_tool":     d.CommercialTool,
		"data_volume":         d.DataVolume,
		"tool_installation":   d.ToolInstallation,
		"compliance_req":      d.ComplianceReq,
		"historical_analysis": d.HistoricalAnalysis,
		"system_integration":  d.SystemIntegration,
		"governance_maturity": d.GovernanceMaturity,
		"rules_count":         d.RulesCount,
		"cloud_platform":      d.CloudPlatform,
	}
}

// Question describes one input the estimator consumes.
type Question struct {
	Label           string   `mapstructure:"label"`
	Type            string   `mapstructure:"type"`
	Tooltip         string   `mapstructure:"tooltip"`
	Section         string   `mapstructure:"section"`
	ComplexityLevel string   `mapstructure:"complexity_level"`
	Options         []string `mapstructure:"options"`
	MinValue        *float64 `mapstructure:"min_value"`
	MaxValue        *float64 `mapstructure:"max_value"`
	Default         any      `mapstructure:"default"`
	Optional        bool     `mapstructure:"optional"`
	DependsOn       string   `mapstructure:"depends_on"`
	DependsValue    string   `mapstructure:"depends_value"`
}

// IsChoice reports whether the question carries an allowed value set.
func (q Question) IsChoice() bool {
	return q.Type == QuestionTypeSelect || q.Type == QuestionTypeRadio
}

// HasOption reports whether v is in the question's allowed value set.
func (q Question) HasOption(v string) bool {
	for _, opt := range q.Options {
		if opt == v {
			return true
		}
	}
	return false
}

// RulesOverhead parameterizes the rules-development step function: the first
// BaseRulesIncluded total rules are free, every started block of 5 beyond
// that costs AdditionalRulesPer5 days.
type RulesOverhead struct {
	BaseRulesIncluded   int     `mapstructure:"base_rules_included"`
	AdditionalRulesPer5 float64 `mapstructure:"additional_rules_per_5"`
}

// CalculationRules holds every tunable coefficient driving the engine.
// Tables map a response label to a numeric rate; unresolved labels fall back
// to documented defaults inside the engine, never to errors.
type CalculationRules struct {
	BaseServiceDays             int                `mapstructure:"base_service_days"`
	AdditionalServiceDays       int                `mapstructure:"additional_service_days"`
	MinimumProjectDays          int                `mapstructure:"minimum_project_days"`
	WorkflowMultipliers         map[string]float64 `mapstructure:"workflow_multipliers"`
	IntegrationComplexity       map[string]float64 `mapstructure:"integration_complexity"`
	IntegrationComplexityLegacy map[string]float64 `mapstructure:"integration_complexity_legacy"`
	DataVolumeMultipliers       map[string]float64 `mapstructure:"data_volume_multipliers"`
	RulesOverhead               RulesOverhead      `mapstructure:"rules_overhead"`
	ExistingRulesImpact         map[string]float64 `mapstructure:"existing_rules_impact"`
	ToolSetup                   map[string]float64 `mapstructure:"tool_setup"`
	InstallationService         map[string]float64 `mapstructure:"installation_service"`
	CloudIntegration            map[string]float64 `mapstructure:"cloud_integration"`
	AdditionalRequirements      map[string]float64 `mapstructure:"additional_requirements"`
}

// Pricing configures day-rate to cost conversion and admin override bounds.
type Pricing struct {
	DefaultPricePerDay float64 `mapstructure:"default_price_per_day"`
	Currency           string  `mapstructure:"currency"`
	CurrencySymbol     string  `mapstructure:"currency_symbol"`
	AllowAdminOverride bool    `mapstructure:"allow_admin_override"`
	MinPriceOverride   float64 `mapstructure:"min_price_override"`
	MaxPriceOverride   float64 `mapstructure:"max_price_override"`
}

// Security gates the detailed breakdown view in the presentation layer.
// Parsed for completeness; the core never reads it.
type Security struct {
	BreakdownPassword string `mapstructure:"breakdown_password"`
	PasswordRequired  bool   `mapstructure:"password_required"`
}

// Export configures the structured export envelope. TimestampFormat is a Go
// time layout.
type Export struct {
	Formats         []string `mapstructure:"formats"`
	IncludeMetadata bool     `mapstructure:"include_metadata"`
	TimestampFormat string   `mapstructure:"timestamp_format"`
}

// CompanyInfo is the branding block embedded in generated reports.
type CompanyInfo struct {
	Name         string `mapstructure:"name"`
	LogoURL      string `mapstructure:"logo_url"`
	ContactEmail string `mapstructure:"contact_email"`
}

// Report toggles the narrative sections of generated reports.
type Report struct {
	IncludeExecutiveSummary       bool        `mapstructure:"include_executive_summary"`
	IncludeCalculationExplanation bool        `mapstructure:"include_calculation_explanation"`
	IncludeMethodology            bool        `mapstructure:"include_methodology"`
	IncludeRiskAssessment         bool        `mapstructure:"include_risk_assessment"`
	IncludeCompanyBranding        bool        `mapstructure:"include_company_branding"`
	DefaultLanguage               string      `mapstructure:"default_language"`
	CompanyInfo                   CompanyInfo `mapstructure:"company_info"`
}

// UISection describes a grouping header in the presentation layer. Every
// question's section must match one of these by name.
type UISection struct {
	Name        string `mapstructure:"name"`
	Icon        string `mapstructure:"icon"`
	Description string `mapstructure:"description"`
}

// MethodologyPhase is static narrative text for reports, not computation.
type MethodologyPhase struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}
