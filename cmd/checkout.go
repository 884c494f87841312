package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <branch>",
	Short: "Switch HEAD and the working tree to a local branch",
	Args:  cobra.ExactArgs(1),
	RunE:  checkoutRunE,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

func checkoutRunE(cmd *cobra.Command, args []string) error {
	if err := newEngine().CheckoutBranch(flagPath, args[0]); err != nil {
		return err
	}
	fmt.Printf("Switched to branch %q\n", args[0])
	return nil
}
