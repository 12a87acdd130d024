// Package errors provides standardized error handling for the calculator.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigFileNotFound      ErrorCode = "CONFIG_FILE_NOT_FOUND"
	ErrCodeConfigParseFailed       ErrorCode = "CONFIG_PARSE_FAILED"
	ErrCodeConfigUnsupportedFormat ErrorCode = "CONFIG_UNSUPPORTED_FORMAT"
	ErrCodeConfigValidationFailed  ErrorCode = "CONFIG_VALIDATION_FAILED"
	ErrCodeConfigNotLoaded         ErrorCode = "CONFIG_NOT_LOADED"

	ErrCodeUnknownComplexityLevel ErrorCode = "UNKNOWN_COMPLEXITY_LEVEL"

	ErrCodeResponsesReadFailed  ErrorCode = "RESPONSES_READ_FAILED"
	ErrCodeResponsesParseFailed ErrorCode = "RESPONSES_PARSE_FAILED"

	ErrCodeReportGenerationFailed  ErrorCode = "REPORT_GENERATION_FAILED"
	ErrCodeExportFormatUnsupported ErrorCode = "EXPORT_FORMAT_UNSUPPORTED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error { return e.cause }

// ==========================
// 2. Configuration Errors
// ==========================

// ConfigurationError is returned when the configuration document fails
// structural validation. It carries every violation found in one pass so a
// config author sees all problems at once, not just the first.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation errors:")
	for _, p := range e.Problems {
		sb.WriteString("\n- ")
		sb.WriteString(p)
	}
	return sb.String()
}

// NewConfigurationError builds a ConfigurationError from a violation list.
func NewConfigurationError(problems []string) *ConfigurationError {
	return &ConfigurationError{Problems: problems}
}

// AsConfigurationError extracts a ConfigurationError from an error chain.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ==========================
// 3. Error Constructors
// ==========================

// NewConfigFileNotFoundError reports a missing configuration file.
func NewConfigFileNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigFileNotFound,
		Message:   "Configuration file not found",
		Details:   fmt.Sprintf("path: %s", path),
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigParseFailedError reports unparsable configuration syntax. This is
// distinct from validation failure: the document could not be read at all.
func NewConfigParseFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigParseFailed,
		Message:   "Invalid configuration file format",
		Details:   fmt.Sprintf("path: %s, error: %v", path, err),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewConfigUnsupportedFormatError reports an unknown config file extension.
func NewConfigUnsupportedFormatError(ext string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigUnsupportedFormat,
		Message:   "Unsupported configuration file format",
		Details:   fmt.Sprintf("extension: %s", ext),
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownComplexityLevelError reports a tier name with no declaration.
func NewUnknownComplexityLevelError(level string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownComplexityLevel,
		Message:   "Unknown complexity level",
		Details:   fmt.Sprintf("level: %s", level),
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigNotLoadedError reports use of the loader before a successful Load.
func NewConfigNotLoadedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigNotLoaded,
		Message:   "Configuration not loaded",
		Timestamp: time.Now().UTC(),
	}
}

// NewReportGenerationFailedError reports a failure local to one export
// format. Other formats and the computed results are unaffected.
func NewReportGenerationFailedError(format string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportGenerationFailed,
		Message:   "Report generation failed",
		Details:   fmt.Sprintf("format: %s, error: %v", format, err),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewExportFormatUnsupportedError reports a format the formatter cannot emit.
func NewExportFormatUnsupportedError(format string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFormatUnsupported,
		Message:   "Unsupported export format",
		Details:   fmt.Sprintf("format: %s", format),
		Timestamp: time.Now().UTC(),
	}
}
