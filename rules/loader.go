// Package rules loads YAML rule-set files and registers their assertions
// into a rule-check registry.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"ercheck/core"
	"ercheck/erc"
	"ercheck/expr"
)

// maxRuleFileSize protects against memory exhaustion from oversized rule
// files.
const maxRuleFileSize = 10 * 1024 * 1024 // 10MB

// RuleDef declares one assertion in a rule file.
type RuleDef struct {
	Name     string `yaml:"name" validate:"required,max=200"`
	Kind     string `yaml:"kind" validate:"required,max=100"`
	Expr     string `yaml:"expr" validate:"required,max=4096"`
	Message  string `yaml:"message" validate:"max=2000"`
	Severity string `yaml:"severity" validate:"omitempty,oneof=error warning"`
}

// KindDef declares a kind and its optional parent so shared checks apply
// to derived kinds.
type KindDef struct {
	Name   string `yaml:"name" validate:"required,max=100"`
	Parent string `yaml:"parent" validate:"max=100"`
}

// RuleFile is the top-level rule-set document.
type RuleFile struct {
	Kinds []KindDef `yaml:"kinds" validate:"dive"`
	Rules []RuleDef `yaml:"rules" validate:"required,min=1,dive"`

	// Source is the file the rules were loaded from, used in violation
	// reports in place of a registration call site.
	Source string `yaml:"-"`
}

// Load reads, parses and validates a rule file.
func Load(path string) (*RuleFile, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat rule file: %w", err)
	}
	if info.Size() > maxRuleFileSize {
		return nil, fmt.Errorf("rule file exceeds maximum size of %d bytes (got %d)", maxRuleFileSize, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}
	rf.Source = filepath.Base(path)

	validate := validator.New()
	if err := validate.Struct(&rf); err != nil {
		return nil, fmt.Errorf("invalid rule file %s: %w", path, err)
	}

	// Parse every expression up front so a bad rule surfaces at load
	// time instead of mid-run.
	for _, def := range rf.Rules {
		if _, err := expr.Compile(def.Expr); err != nil {
			return nil, fmt.Errorf("rule %s: invalid expression: %w", def.Name, err)
		}
	}
	return &rf, nil
}

// Register declares the file's kinds and appends its assertions to the
// registry in file order.
func Register(registry *erc.Registry, rf *RuleFile) error {
	for _, kd := range rf.Kinds {
		if err := registry.DefineKind(kd.Name, kd.Parent); err != nil {
			return err
		}
	}
	for _, def := range rf.Rules {
		severity, err := core.ParseSeverity(def.Severity)
		if err != nil {
			severity = core.SeverityError
		}
		message := def.Message
		if message == "" {
			message = def.Name
		}
		registry.AddAssertionFromSource(def.Kind, def.Expr, message, severity, rf.Source, def.Name)
	}
	return nil
}

// validateFilePath rejects path traversal sequences before any file
// access.
func validateFilePath(path string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("invalid rule file path %q: path traversal not allowed", path)
	}
	return nil
}
