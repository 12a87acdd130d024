// internal/common/config/defaults.go
package config

// applyRawDefaults fills the true-by-default flags on the raw document before
// struct mapping. A plain bool field cannot distinguish an absent key from an
// explicit false, so these cannot wait until applyDefaults.
func applyRawDefaults(raw map[string]any) {
	setRawDefault(raw, "pricing_config", "allow_admin_override", true)
	setRawDefault(raw, "export_config", "include_metadata", true)
	setRawDefault(raw, "security_config", "password_required", true)
	for _, flag := range []string{
		"include_executive_summary",
		"include_calculation_explanation",
		"include_methodology",
		"include_risk_assessment",
		"include_company_branding",
	} {
		setRawDefault(raw, "report_config", flag, true)
	}
}

// setRawDefault sets section.key when absent. A wrongly-typed section is left
// untouched for the document shape check to report.
func setRawDefault(raw map[string]any, section, key string, value any) {
	sec, ok := raw[section].(map[string]any)
	if !ok {
		if _, exists := raw[section]; exists {
			return
		}
		sec = map[string]any{}
		raw[section] = sec
	}
	if _, exists := sec[key]; !exists {
		sec[key] = value
	}
}

// applyDefaults fills documented defaults for every absent field. Runs after
// unmarshal and before validation, so a minimal document still produces a
// complete configuration.
func applyDefaults(cfg *Config) {
	if cfg.App.Title == "" {
		cfg.App.Title = "DQ Service Calculator"
	}
	if cfg.App.Subtitle == "" {
		cfg.App.Subtitle = "Stratesys Technology Solutions"
	}
	if cfg.App.PageIcon == "" {
		cfg.App.PageIcon = "📊"
	}
	if cfg.App.Layout == "" {
		cfg.App.Layout = "wide"
	}
	if cfg.App.SidebarTitle == "" {
		cfg.App.SidebarTitle = "🔧 Options"
	}

	if cfg.QuickEstimate.Title == "" {
		cfg.QuickEstimate.Title = "⚡ Quick Estimate Mode"
	}
	if len(cfg.QuickEstimate.CoreQuestions) == 0 {
		cfg.QuickEstimate.CoreQuestions = []string{"tables_count"}
	}
	applyQuickDefaults(&cfg.QuickEstimate.Defaults)

	for id, q := range cfg.Questions {
		if q.Section == "" {
			q.Section = "General"
		}
		if q.ComplexityLevel == "" {
			q.ComplexityLevel = "basic"
		}
		cfg.Questions[id] = q
	}

	applyRuleDefaults(&cfg.CalculationRules)

	if cfg.Pricing.DefaultPricePerDay == 0 {
		cfg.Pricing.DefaultPricePerDay = 700.0
	}
	if cfg.Pricing.Currency == "" {
		cfg.Pricing.Currency = "EUR"
	}
	if cfg.Pricing.CurrencySymbol == "" {
		cfg.Pricing.CurrencySymbol = "€"
	}
	if cfg.Pricing.MinPriceOverride == 0 {
		cfg.Pricing.MinPriceOverride = 500.0
	}
	if cfg.Pricing.MaxPriceOverride == 0 {
		cfg.Pricing.MaxPriceOverride = 5000.0
	}

	if cfg.Security.BreakdownPassword == "" {
		cfg.Security.BreakdownPassword = "stratesys2024"
	}

	if len(cfg.Export.Formats) == 0 {
		cfg.Export.Formats = []string{"json"}
	}
	if cfg.Export.TimestampFormat == "" {
		cfg.Export.TimestampFormat = "2006-01-02 15:04:05"
	}

	if cfg.Report.DefaultLanguage == "" {
		cfg.Report.DefaultLanguage = "es"
	}
	if cfg.Report.CompanyInfo.Name == "" {
		cfg.Report.CompanyInfo.Name = "Stratesys Technology Solutions"
	}
	if cfg.Report.CompanyInfo.ContactEmail == "" {
		cfg.Report.CompanyInfo.ContactEmail = "info@stratesys.com"
	}
}

func applyQuickDefaults(d *QuickEstimateDefaults) {
	if d.WorkflowComplexity == "" {
		d.WorkflowComplexity = "Simple (single table/report)"
	}
	if d.DataSources == "" {
		d.DataSources = "Single location (same database/schema)"
	}
	if d.ExistingRules == "" {
		d.ExistingRules = "Not documented"
	}
	if d.CommercialTool == "" {
		d.CommercialTool = "No commercial tool"
	}
	if d.DataVolume == "" {
		d.DataVolume = "Small (<1M records)"
	}
	if d.ToolInstallation == "" {
		d.ToolInstallation = "No, not needed"
	}
	if d.RulesCount == 0 {
		d.RulesCount = 15
	}
	if d.CloudPlatform == "" {
		d.CloudPlatform = "Not applicable"
	}
}

func applyRuleDefaults(r *CalculationRules) {
	if r.BaseServiceDays == 0 {
		r.BaseServiceDays = 9
	}
	if r.AdditionalServiceDays == 0 {
		r.AdditionalServiceDays = 5
	}
	if r.MinimumProjectDays == 0 {
		r.MinimumProjectDays = 5
	}
	if r.RulesOverhead.BaseRulesIncluded == 0 {
		r.RulesOverhead.BaseRulesIncluded = 20
	}
	if r.RulesOverhead.AdditionalRulesPer5 == 0 {
		r.RulesOverhead.AdditionalRulesPer5 = 0.5
	}
}
