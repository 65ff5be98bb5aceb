package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "diagile",
	Short: "Diagile - architecture diagrams to validated threat models",
	Long: `Diagile converts draw.io architecture diagrams into validated Threagile
threat-model documents: shapes become typed components and technical assets,
containers become trust boundaries, connectors become relations with inferred
protocols, and the result is checked by an ordered validation pipeline that
accumulates findings instead of failing on the first problem.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to mapping-rules YAML file (default: built-in tables)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to JSONL conversion log (default: no log)")
}

func Execute() error {
	return rootCmd.Execute()
}
