package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff <commit> <path>",
	Short: "Show the content of one path before and after a commit",
	Args:  cobra.ExactArgs(2),
	RunE:  diffRunE,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func diffRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	diff, err := newEngine().CommitFileDiff(flagPath, args[0], args[1])
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, diff)
	}
	return output.WritePatch(os.Stdout, args[1], diff)
}
