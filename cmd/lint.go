package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ercheck/rules"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <rules.yaml>...",
		Short: "Validate rule-set files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				rf, err := rules.Load(path)
				if err != nil {
					errorColor.Printf("FAIL %s\n", path)
					fmt.Printf("  %v\n", err)
					failed++
					continue
				}
				successColor.Printf("OK   %s (%d rules)\n", path, len(rf.Rules))
			}
			if failed > 0 {
				return fmt.Errorf("%d rule file(s) failed validation", failed)
			}
			return nil
		},
	}
}
