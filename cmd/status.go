package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Classify working-tree paths against the index and HEAD",
	RunE:  statusRunE,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	statuses, err := newEngine().Status(flagPath)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, statuses)
	}
	return output.WriteStatus(os.Stdout, statuses)
}
