package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var remotesCmd = &cobra.Command{
	Use:   "remotes",
	Short: "List configured remotes and their URLs",
	RunE:  remotesRunE,
}

func init() {
	rootCmd.AddCommand(remotesCmd)
}

func remotesRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	remotes, err := newEngine().Remotes(flagPath)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, remotes)
	}
	return output.WriteRemotes(os.Stdout, remotes)
}
