package common

// SolverName identifies one of the solver family members exposed at
// the edges (CLI/HTTP).
type SolverName string

const (
	SolverNaive SolverName = "naive"
	SolverCFS   SolverName = "cfs"
	SolverFast  SolverName = "fast"
)

// SolverConfig collects the solver defaults. The CLI reads
// DefaultCFSTimeout for its --timeout flag; Default records Fast as the
// default solver. Fast is the default per the module layout Open Question.
type SolverConfig struct {
	Default           SolverName
	DefaultCFSTimeout uint64 // seconds; 0 means no timeout
}

// DefaultSolverConfig keeps Fast as the recommended default for new
// callers and a 5-second CFS budget for interactive use.
var DefaultSolverConfig = SolverConfig{
	Default:           SolverFast,
	DefaultCFSTimeout: 5,
}
