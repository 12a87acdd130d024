// cmd/dq-calculator/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dq-calculator/internal/calculator"
	"dq-calculator/internal/common/config"
	apperrors "dq-calculator/internal/common/errors"
	"dq-calculator/internal/common/logger"
	"dq-calculator/internal/models"
	"dq-calculator/internal/report"
)

// The DQ_PRICE_PER_DAY environment variable overrides the configured day
// rate when no --price flag is given.
const envPriceKey = "price_per_day"

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgMagenta, color.Bold)
)

func main() {
	var (
		configFile string
		logLevel   string
	)

	var loader *config.Loader
	log := logger.NewNoOpLogger()

	rootCmd := &cobra.Command{
		Use:   "dq-calculator",
		Short: "Estimate data-quality project effort from a configurable rule set",
		Long: `A configuration-driven estimator for data-quality projects: answers about
table count, integration complexity, rule maturity and tooling are mapped
through a tunable rule set into a working-day estimate with a per-component
cost breakdown, rendered as text, CSV or a JSON export envelope.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zapLog := logger.New(logLevel, "console")
			log = logger.NewZapAdapter(zapLog)
			loader = config.NewLoader(configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newEstimateCmd(&loader, &log),
		newValidateCmd(&loader),
		newQuestionsCmd(&loader),
	)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEstimateCmd(loader **config.Loader, log *logger.Logger) *cobra.Command {
	var (
		responsesFile string
		level         string
		quick         bool
		format        string
		output        string
		price         float64
		teamSize      int
		explain       bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a working-day estimate from a responses file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrReport(*loader)
			if err != nil {
				return err
			}

			responses, err := readResponses(responsesFile)
			if err != nil {
				return err
			}

			engine := calculator.NewEngine(cfg)

			if quick {
				responses = mergeQuickDefaults(cfg, responses)
				if errs := engine.ValidateQuickResponses(responses); len(errs) > 0 {
					reportFieldErrors(errs)
					return fmt.Errorf("responses failed quick validation")
				}
			} else {
				errs, err := engine.ValidateResponses(responses, level)
				if err != nil {
					return err
				}
				if len(errs) > 0 {
					reportFieldErrors(errs)
					return fmt.Errorf("responses failed validation for level %q", level)
				}
			}

			totalDays, breakdown := engine.CalculateWorkingDays(responses)
			(*log).Info("estimate computed", map[string]interface{}{
				"totalDays":  totalDays,
				"components": breakdown.Len(),
			})

			pricePerDay := report.ResolvePrice(cfg.Pricing, resolvePriceOverride(price))
			gen := report.NewGenerator(cfg, (*loader).Path())

			var body []byte
			switch format {
			case "text":
				explanation := ""
				if explain || cfg.Report.IncludeCalculationExplanation {
					explanation = engine.Explanation(responses, breakdown)
				}
				text := gen.SummaryReport(responses, totalDays, breakdown, pricePerDay, explanation)
				if teamSize > 1 {
					timeline := calculator.ProjectTimeline(totalDays, teamSize)
					text += fmt.Sprintf("\n\nTimeline: %.1f weeks sequential, %.1f weeks with %d people\n",
						timeline.SequentialWeeks, timeline.ParallelWeeks, timeline.TeamSize)
				}
				body = []byte(text)
			case "csv":
				csvText, err := report.CSVBreakdown(breakdown, totalDays)
				if err != nil {
					return err
				}
				body = []byte(csvText)
			case "json":
				body, err = gen.JSONExport(responses, totalDays, breakdown)
				if err != nil {
					return err
				}
			default:
				return apperrors.NewExportFormatUnsupportedError(format)
			}

			if output != "" {
				if err := os.WriteFile(output, body, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				successColor.Printf("Estimate written to %s (%d days)\n", output, totalDays)
				return nil
			}
			fmt.Println(string(body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&responsesFile, "responses", "r", "", "Responses JSON file")
	cmd.Flags().StringVarP(&level, "level", "l", "advanced", "Complexity level to validate against")
	cmd.Flags().BoolVar(&quick, "quick", false, "Quick-estimate mode: core questions only, defaults for the rest")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, csv, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().Float64Var(&price, "price", 0, "Override price per day (clamped to configured bounds)")
	cmd.Flags().IntVar(&teamSize, "team-size", 1, "Team size for the timeline projection")
	cmd.Flags().BoolVar(&explain, "explain", false, "Include the calculation explanation even when report_config disables it")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}

func newValidateCmd(loader **config.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration document and report every problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfigOrReport(*loader); err != nil {
				return err
			}
			successColor.Printf("Configuration OK: %s\n", (*loader).Path())
			return nil
		},
	}
}

func newQuestionsCmd(loader **config.Loader) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions visible at a complexity level, by section",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrReport(*loader)
			if err != nil {
				return err
			}
			sections, err := cfg.QuestionsBySection(level)
			if err != nil {
				return err
			}
			for _, sq := range sections {
				headerColor.Printf("%s %s\n", sq.Section.Icon, sq.Section.Name)
				if sq.Section.Description != "" {
					infoColor.Printf("  %s\n", sq.Section.Description)
				}
				for _, id := range sq.QuestionIDs {
					q := cfg.Questions[id]
					optional := ""
					if q.Optional {
						optional = " (optional)"
					}
					fmt.Printf("  %s: %s%s\n", id, q.Label, optional)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "advanced", "Complexity level")
	return cmd
}

// loadConfigOrReport loads the configuration, printing the full violation
// list when validation fails. Configuration problems are fatal; there is no
// partial mode.
func loadConfigOrReport(loader *config.Loader) (*config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		if ce, ok := apperrors.AsConfigurationError(err); ok {
			errorColor.Fprintln(os.Stderr, "Configuration is invalid:")
			for _, problem := range ce.Problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", problem)
			}
			return nil, fmt.Errorf("%d configuration problem(s)", len(ce.Problems))
		}
		return nil, err
	}
	return cfg, nil
}

func readResponses(path string) (models.Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	var responses models.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("parse responses: %w", err)
	}
	return responses, nil
}

// mergeQuickDefaults lays the quick-estimate default answers underneath the
// supplied responses; explicit answers always win.
func mergeQuickDefaults(cfg *config.Config, responses models.Responses) models.Responses {
	merged := cfg.QuickEstimate.Defaults.Responses()
	for k, v := range responses {
		merged[k] = v
	}
	return merged
}

func resolvePriceOverride(flagPrice float64) float64 {
	if flagPrice > 0 {
		return flagPrice
	}
	return config.EnvFloat(envPriceKey)
}

func reportFieldErrors(errs map[string]string) {
	errorColor.Fprintln(os.Stderr, "Invalid responses:")
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, errs[field])
	}
}
