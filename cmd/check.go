package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ercheck/bootstrap"
	"ercheck/config"
	"ercheck/core"
	"ercheck/erc"
	"ercheck/rules"
	"ercheck/schematic"
)

// initialize builds the shared logger and loads config, honoring the
// --log-level override. The logger comes up first so config loading can
// report where its settings came from.
func initialize() (*config.Config, *zap.SugaredLogger, error) {
	level := logLevel
	if level == "" {
		level = "info"
	}
	_, sugar, err := bootstrap.InitLogger(level)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := bootstrap.InitConfig(sugar)
	if err != nil {
		return nil, nil, err
	}

	// Without a --log-level flag the configured level wins; rebuild the
	// logger when it differs from the startup default.
	if logLevel == "" && cfg.LogLevel != level {
		if _, sugar, err = bootstrap.InitLogger(cfg.LogLevel); err != nil {
			return nil, nil, err
		}
	}
	return cfg, sugar, nil
}

func newCheckCmd() *cobra.Command {
	var (
		ruleFiles        []string
		warningsAsErrors bool
	)

	checkCmd := &cobra.Command{
		Use:   "check <design.yaml>",
		Short: "Run rule checks against a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sugar, err := initialize()
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}

			registry := erc.NewRegistry()
			if err := schematic.DefineKinds(registry); err != nil {
				return err
			}

			files := append(append([]string{}, cfg.RuleFiles...), ruleFiles...)
			if len(files) == 0 {
				return fmt.Errorf("no rule files: pass --rules or set rule_files in the config")
			}
			for _, path := range files {
				rf, err := rules.Load(path)
				if err != nil {
					return err
				}
				if err := rules.Register(registry, rf); err != nil {
					return err
				}
				sugar.Debugw("Rule file registered", "file", path, "rules", len(rf.Rules))
			}

			design, err := schematic.LoadDesign(args[0])
			if err != nil {
				return err
			}

			engine := erc.NewEngine(registry, sugar)
			var errors, warnings int
			for _, obj := range design.Objects() {
				report, err := engine.Run(obj)
				if err != nil {
					return fmt.Errorf("rule check aborted: %w", err)
				}
				for _, v := range report.Violations {
					if v.Severity == core.SeverityError {
						errors++
					} else {
						warnings++
					}
				}
			}

			printSummary(design.Name, errors, warnings)

			if errors > 0 {
				return fmt.Errorf("%d error violation(s)", errors)
			}
			if warnings > 0 && (warningsAsErrors || cfg.WarningsAsErrors) {
				return fmt.Errorf("%d warning violation(s) with warnings treated as errors", warnings)
			}
			return nil
		},
	}

	checkCmd.Flags().StringSliceVarP(&ruleFiles, "rules", "r", nil, "rule-set file (repeatable)")
	checkCmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "treat warning violations as errors")

	return checkCmd
}

func printSummary(name string, errors, warnings int) {
	if name == "" {
		name = "design"
	}
	headerColor.Printf("ERC summary for %s\n", name)
	switch {
	case errors > 0:
		errorColor.Printf("  %d error(s), %d warning(s)\n", errors, warnings)
	case warnings > 0:
		warningColor.Printf("  0 errors, %d warning(s)\n", warnings)
	default:
		successColor.Println("  no violations")
	}
}
