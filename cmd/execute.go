package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs rootCmd and returns the process exit code. A failure is
// printed to the command's stderr.
func Execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		// %v of a registered error appends its stack frame.
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err.Error())
		return 1
	}
	return 0
}
