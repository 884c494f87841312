package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize repository paths, sizes, and LFS state",
	RunE:  infoRunE,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func infoRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	info, err := newEngine().RepoInfo(flagPath)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, info)
	}
	return output.WriteRepoInfo(os.Stdout, info)
}
