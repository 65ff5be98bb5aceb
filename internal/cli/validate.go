package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/report"
	"github.com/nmoret/diagile/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <model.yaml>",
	Short: "Re-run the validation passes over an existing model document",
	Long: `Validate loads a previously generated (or hand-edited) threat-model YAML
document and runs the same ordered validation passes the converter applies,
printing every finding. Exits non-zero when errors are present.

  diagile validate model.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: validateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	compiled, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	doc, err := report.ReadDocumentFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	result := validate.New().Run(doc, compiled)

	if logPath != "" {
		logger, err := report.NewLogger(logPath)
		if err != nil {
			return fmt.Errorf("failed to open conversion log: %w", err)
		}
		defer func() { _ = logger.Close() }()
		_ = logger.LogFindings(report.NewRunID(), "validate", result.Findings)
	}

	summary := report.NewSummary(cmd.OutOrStdout())
	summary.Print(doc, result.Findings)
	summary.PrintFindings(result.Findings)

	if result.HasErrors() {
		return fmt.Errorf("document has %d validation error(s)", len(result.Errors()))
	}
	return nil
}
