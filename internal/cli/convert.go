package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmoret/diagile/internal/config"
	"github.com/nmoret/diagile/internal/finding"
	"github.com/nmoret/diagile/internal/mapper"
	"github.com/nmoret/diagile/internal/model"
	"github.com/nmoret/diagile/internal/report"
	"github.com/nmoret/diagile/internal/validate"
)

var (
	outputPath string
	metaTitle  string
	metaDesc   string
	metaDate   string
	metaAuthor string
	strictMode bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <diagram.xml>",
	Short: "Convert a draw.io diagram into a threat-model YAML document",
	Long: `Convert parses the diagram, classifies shapes against the synonym tables,
resolves containment and flows, assembles the threat-model document and runs
the validation passes. The document is always written; findings decide the
exit code only with --strict.

  diagile convert architecture.drawio -o model.yaml --title "Shop"`,
	Args: cobra.ExactArgs(1),
	RunE: convertCommand,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "model.yaml", "Output path for the model YAML")
	convertCmd.Flags().StringVar(&metaTitle, "title", "", "Document title")
	convertCmd.Flags().StringVar(&metaDesc, "description", "", "Document description")
	convertCmd.Flags().StringVar(&metaDate, "date", "", "Document date (YYYY-MM-DD)")
	convertCmd.Flags().StringVar(&metaAuthor, "author", "", "Document author")
	convertCmd.Flags().BoolVar(&strictMode, "strict", false, "Exit non-zero when validation reports errors")
	rootCmd.AddCommand(convertCmd)
}

func convertCommand(cmd *cobra.Command, args []string) error {
	compiled, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	markup, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read diagram: %w", err)
	}

	meta := model.Metadata{
		Title:       metaTitle,
		Description: metaDesc,
		Date:        metaDate,
		Author:      metaAuthor,
	}
	if meta.Title == "" {
		meta.Title = "Threat model for " + args[0]
	}

	runID := report.NewRunID()
	logger, err := openLogger()
	if err != nil {
		return err
	}
	if logger != nil {
		defer func() { _ = logger.Close() }()
	}

	doc, findings, err := mapper.New(compiled).Convert(string(markup), meta)
	logEvents(logger, runID, "convert", findings.All())
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	result := validate.New().Run(doc, compiled)
	logEvents(logger, runID, "validate", result.Findings)

	if err := report.WriteDocumentFile(outputPath, doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	all := append(findings.All(), result.Findings...)
	summary := report.NewSummary(cmd.OutOrStdout())
	summary.Print(doc, all)
	summary.PrintFindings(all)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)

	if strictMode && hasErrors(all) {
		return fmt.Errorf("validation reported errors")
	}
	return nil
}

func openLogger() (*report.Logger, error) {
	if logPath == "" {
		return nil, nil
	}
	logger, err := report.NewLogger(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open conversion log: %w", err)
	}
	return logger, nil
}

func logEvents(logger *report.Logger, runID, stage string, findings []finding.Finding) {
	if logger == nil {
		return
	}
	_ = logger.LogFindings(runID, stage, findings)
}

func hasErrors(findings []finding.Finding) bool {
	for _, f := range findings {
		if f.Severity == finding.SeverityError {
			return true
		}
	}
	return false
}
