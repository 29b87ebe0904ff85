package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"bulkcopy-generator/internal/analyze"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [packages]",
	Short: "Scan packages and dump the discovered candidate descriptors",
	Long: `Scan the given package patterns and print each candidate's descriptor:
identity, destination table, and the ordered member list with column
names, rendered types, and nullability. Useful for checking what
generate would emit without writing anything.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("dump", false, "Dump raw descriptors with spew instead of the summary")
	rootCmd.AddCommand(inspectCmd)
}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	model, err := analyze.NewScanner().Scan(patterns...)
	if err != nil {
		return err
	}

	cfg.Apply(model)
	printDiagnostics(cmd, model)

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}

	if dump {
		dumper.Fdump(cmd.OutOrStdout(), model.Candidates)
		return nil
	}

	out := cmd.OutOrStdout()

	for _, cand := range model.Candidates {
		fmt.Fprintf(out, "%s -> %s (%d columns)\n", cand.ID, cand.Table, len(cand.Members))

		for _, m := range cand.Members {
			null := ""
			if m.Nullable {
				null = " null"
			}

			fmt.Fprintf(out, "  %-20s %-20s %s%s\n", m.Name, m.Column, m.Type, null)
		}
	}

	if len(model.Candidates) == 0 {
		fmt.Fprintln(out, "no marked types found")
	}

	return nil
}
