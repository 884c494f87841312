package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var changesCmd = &cobra.Command{
	Use:   "changes <commit>",
	Short: "List paths changed by a commit relative to its first parent",
	Args:  cobra.ExactArgs(1),
	RunE:  changesRunE,
}

func init() {
	rootCmd.AddCommand(changesCmd)
}

func changesRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	changes, err := newEngine().CommitChanges(flagPath, args[0])
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, changes)
	}
	return output.WriteChanges(os.Stdout, changes)
}
