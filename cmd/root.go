package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamao0820/daily-akari-solver/cmd/serve"
	"github.com/hamao0820/daily-akari-solver/cmd/solve"
	"github.com/hamao0820/daily-akari-solver/cmd/verify"
	"github.com/hamao0820/daily-akari-solver/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workingDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "akari-solver",
	Short: "Daily Akari (Light Up) puzzle solver",
	Long: `Akari Solver reads a Light Up puzzle and produces a solution.

It provides commands for:
  - Solving a puzzle read from stdin or a file
  - Verifying a candidate solution against a puzzle
  - Serving the solver over HTTP`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set verbose flag in common package
		common.VerboseEnabled = verbose

		// Handle working directory
		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for input file paths (default: current directory)")

	// Register subcommands
	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(verify.GetCommand())
	rootCmd.AddCommand(serve.GetCommand())
}
