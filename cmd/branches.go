package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List local and remote-tracking branches",
	RunE:  branchesRunE,
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}

func branchesRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	branches, err := newEngine().Branches(flagPath)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, branches)
	}
	return output.WriteBranches(os.Stdout, branches)
}
