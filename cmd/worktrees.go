package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var worktreesCmd = &cobra.Command{
	Use:   "worktrees",
	Short: "List the primary and linked worktrees",
	RunE:  worktreesRunE,
}

func init() {
	rootCmd.AddCommand(worktreesCmd)
}

func worktreesRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	worktrees, err := newEngine().Worktrees(flagPath)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, worktrees)
	}
	return output.WriteWorktrees(os.Stdout, worktrees)
}
