package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/logging"
	"github.com/repolens/repolens/pkg/repolens"
)

// Global flags shared across commands.
var (
	flagPath      string
	flagOutput    string
	flagVerbosity string
)

// rootCmd is the top-level command for repolens.
var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Structural inspection of local git repositories",
	Long: "repolens answers structural questions about a local git repository: " +
		"branches, remotes, commit history, per-commit changes, working-tree " +
		"status, worktrees, and on-disk storage footprint.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository (or a file inside one)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text or json (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine builds the engine with a logger honoring the verbosity flag.
func newEngine() *repolens.Engine {
	return repolens.New(repolens.Options{
		Logger: logging.NewText(os.Stderr, logging.LevelFromVerbosity(flagVerbosity)),
	})
}

// loadConfig reads .repolens.yml next to the target path, falling back to
// defaults when absent.
func loadConfig() (*config.Config, error) {
	return config.Detect(flagPath)
}

// outputFormat resolves the effective output format: the flag wins over the
// config file default.
func outputFormat(cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output
}
