package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/output"
)

var flagLogLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List commits reachable from HEAD, most recent first",
	RunE:  logRunE,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogLimit, "limit", "n", 0, "maximum number of commits (default from config)")
	rootCmd.AddCommand(logCmd)
}

func logRunE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := flagLogLimit
	if limit <= 0 {
		limit = cfg.CommitLimit
	}

	commits, err := newEngine().Commits(flagPath, limit)
	if err != nil {
		return err
	}

	if outputFormat(cfg) == "json" {
		return output.WriteJSON(os.Stdout, commits)
	}
	return output.WriteCommits(os.Stdout, commits)
}
