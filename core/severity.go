package core

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Severity classifies how a reported rule violation is logged.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Valid reports whether the severity is one of the supported levels.
func (s Severity) Valid() bool {
	return s == SeverityError || s == SeverityWarning
}

// ZapLevel maps the severity onto the corresponding zap log level.
func (s Severity) ZapLevel() zapcore.Level {
	if s == SeverityWarning {
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityError:
		return SeverityError, nil
	case SeverityWarning:
		return SeverityWarning, nil
	default:
		return "", fmt.Errorf("invalid severity: %s", s)
	}
}
