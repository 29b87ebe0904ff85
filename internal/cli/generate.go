package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bulkcopy-generator/internal/analyze"
	"bulkcopy-generator/internal/config"
	"bulkcopy-generator/internal/diagnostic"
	"bulkcopy-generator/internal/gen"
)

var generateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Scan packages and write adapter files",
	Long: `Scan the given package patterns (default: the config file's packages,
or ./...) for marked types and write one adapter file per candidate into
the declaring package.

Error diagnostics (unexported or non-struct marked types) abort generation;
warnings are printed and generation proceeds.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "Report what would be generated without writing files")
	generateCmd.Flags().String("suffix", "", `Generated filename suffix (default "_copyfrom")`)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	verbose := getVerboseFlag(cmd)
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "scanning %v\n", patterns)
	}

	model, err := analyze.NewScanner().Scan(patterns...)
	if err != nil {
		return err
	}

	printDiagnostics(cmd, model)

	if model.Diagnostics.HasErrors() {
		return fmt.Errorf("scan rejected %d marked type(s)", len(model.Diagnostics.Errors))
	}

	if len(model.Candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no marked types found")
		return nil
	}

	cfg.Apply(model)

	suffix, err := cmd.Flags().GetString("suffix")
	if err != nil {
		return err
	}

	if suffix == "" {
		suffix = cfg.Suffix
	}

	files, err := gen.NewGenerator(gen.Config{Suffix: suffix}).Generate(model)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "would write %s\n", filepath.Join(f.Dir, f.Filename))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", filepath.Join(f.Dir, f.Filename))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d adapter(s) for %d type(s)\n",
		len(files), len(model.Candidates))

	return nil
}

// loadConfig resolves the generator configuration: an explicit --config
// path must exist; otherwise ./bulkcopy.yaml is used when present, and
// built-in defaults when not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(config.DefaultFilename); err == nil {
		return config.LoadFile(config.DefaultFilename)
	}

	return config.Default(), nil
}

// printDiagnostics reports scan findings: errors and warnings always,
// infos only with --verbose.
func printDiagnostics(cmd *cobra.Command, model *analyze.Model) {
	verbose := getVerboseFlag(cmd)

	for _, d := range model.Diagnostics.All() {
		if d.Severity == diagnostic.SeverityInfo && !verbose {
			continue
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d.String())
	}
}
