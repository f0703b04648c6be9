// Package verify implements the "verify" subcommand: check a candidate
// solution against a puzzle using the independent verifier.
package verify

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamao0820/daily-akari-solver/pkg/common"
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

var (
	fieldFlag    string
	solutionFlag string
)

// VerifyCmd checks a candidate solution file against a puzzle file.
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a candidate solution against a puzzle",
	Long: `Verify reads a puzzle (--field) and a candidate solution
(--solution, a grid using 'A' for a cell holding a light and any other
character for a cell without one) and reports whether the solution is correct.

Example:
  akari-solver verify --field puzzle.txt --solution candidate.txt
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fieldData, err := os.ReadFile(fieldFlag)
		if err != nil {
			return fmt.Errorf("failed to read field file: %w", err)
		}
		solutionData, err := os.ReadFile(solutionFlag)
		if err != nil {
			return fmt.Errorf("failed to read solution file: %w", err)
		}

		f, sol, err := parse(string(fieldData), string(solutionData))
		if err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}

		if err := verifier.Check(f, sol); err != nil {
			common.Info("invalid: %v", err)
			os.Exit(1)
		}
		common.Info("valid")
		return nil
	},
}

func init() {
	VerifyCmd.Flags().StringVar(&fieldFlag, "field", "", "path to the puzzle file")
	VerifyCmd.Flags().StringVar(&solutionFlag, "solution", "", "path to the candidate solution file")
	_ = VerifyCmd.MarkFlagRequired("field")
	_ = VerifyCmd.MarkFlagRequired("solution")
}

// GetCommand returns the verify command for registration with root.
func GetCommand() *cobra.Command {
	return VerifyCmd
}

func parse(fieldText, solutionText string) (*field.Field, *solution.Solution, error) {
	rows := splitRows(fieldText)
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("level data is empty")
	}
	f, err := field.ParseText(len(rows), len(rows[0]), fieldText)
	if err != nil {
		return nil, nil, err
	}

	solRows := splitRows(solutionText)
	if len(solRows) != f.H {
		return nil, nil, fmt.Errorf("solution row count does not match field height")
	}
	sol := solution.New(f.H, f.W)
	for r, row := range solRows {
		if len(row) != f.W {
			return nil, nil, fmt.Errorf("solution row width does not match field width")
		}
		for c := 0; c < f.W; c++ {
			sol.Lights[r][c] = row[c] == 'A'
		}
	}
	return f, sol, nil
}

func splitRows(raw string) []string {
	var rows []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			if i > start {
				rows = append(rows, raw[start:i])
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		rows = append(rows, raw[start:])
	}
	return rows
}
