// Package solve implements the "solve" subcommand: read a puzzle and
// print its solution.
package solve

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamao0820/daily-akari-solver/pkg/common"
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/progress"
	"github.com/hamao0820/daily-akari-solver/pkg/solver"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/cfs"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/fast"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/naive"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

var (
	fileFlag    string
	solverFlag  string
	timeoutFlag uint64
	quietFlag   bool
)

// SolveCmd solves a puzzle read from --file or stdin and prints its
// solution rendering.
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve an Akari puzzle",
	Long: `Solve reads H, W, and then H row tokens (space- or
newline-separated) from --file or stdin, and prints either the solved
grid or a not-found notice.

Examples:
  akari-solver solve --file puzzle.txt
  printf "1 3\n.2.\n" | akari-solver solve --solver cfs --timeout 5
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd)
		if err != nil {
			return fmt.Errorf("failed to read puzzle: %w", err)
		}

		f, err := parseInput(raw)
		if err != nil {
			return fmt.Errorf("failed to parse puzzle: %w", err)
		}

		s := buildSolver()
		common.Verbose("using solver: %s", solverFlag)

		sol, ok := s.Solve(f)
		if ok {
			if err := verifier.Check(f, sol); err != nil {
				common.Error("solver produced a solution the verifier rejected: %v", err)
				ok = false
			}
		}

		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "> answer not found")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "> found answer\n%s\n", colorize(field.Render(f, sol)))
		return nil
	},
}

func init() {
	SolveCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a puzzle file (default: stdin)")
	SolveCmd.Flags().StringVarP(&solverFlag, "solver", "s", string(common.SolverFast), "solver to use: naive, cfs, or fast")
	SolveCmd.Flags().Uint64VarP(&timeoutFlag, "timeout", "t", common.DefaultSolverConfig.DefaultCFSTimeout, "timeout in seconds (cfs solver only, 0 disables it)")
	SolveCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress the progress spinner")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return SolveCmd
}

func readInput(cmd *cobra.Command) (string, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseInput reads the stdin protocol: the first two
// whitespace-separated tokens are H and W, followed by at least H row
// tokens (each a contiguous run of cell characters with no internal
// whitespace). Tokens after the first H rows are ignored.
func parseInput(raw string) (*field.Field, error) {
	tokens := strings.Fields(raw)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("level data is empty")
	}

	h, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse")
	}
	w, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse")
	}

	rows := tokens[2:]
	if len(rows) < h {
		return nil, fmt.Errorf("row widths are inconsistent")
	}
	rows = rows[:h]

	return field.ParseText(h, w, strings.Join(rows, "\n"))
}

// colorize highlights lights ('A') green and numeric walls yellow; fatih/color
// strips the escape codes itself when the output isn't a terminal.
func colorize(rendered string) string {
	lit := color.New(color.FgGreen).SprintFunc()
	wall := color.New(color.FgYellow).SprintFunc()

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		for _, ch := range line {
			switch {
			case ch == 'A':
				b.WriteString(lit(string(ch)))
			case ch >= '0' && ch <= '4':
				b.WriteString(wall(string(ch)))
			default:
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildSolver() solver.Solver {
	switch common.SolverName(solverFlag) {
	case common.SolverNaive:
		return naive.Naive{}
	case common.SolverCFS:
		var timeout *uint64
		if timeoutFlag > 0 {
			timeout = &timeoutFlag
		}
		if quietFlag {
			return cfs.New(timeout)
		}
		return cfs.WithPB{CFS: cfs.New(timeout), Sink: progress.NewTerminal("solving")}
	default:
		return fast.Fast{}
	}
}
