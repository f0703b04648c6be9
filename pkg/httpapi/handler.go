package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/hamao0820/daily-akari-solver/pkg/common"
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/solver"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/cfs"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/fast"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

// NewRouter builds the HTTP surface: a health check and a solve
// endpoint, wrapped in permissive CORS for browser clients.
func NewRouter(s solver.Solver) http.Handler {
	if s == nil {
		s = fast.Fast{}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	r.Use(c.Handler)

	r.Get("/health", healthHandler)
	r.Post("/", solveHandler(s))

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Daily Akari Solver!"))
}

func solveHandler(s solver.Solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failed("cell parse error"))
			return
		}

		f, err := req.toField()
		if err != nil {
			common.Verbose("httpapi: parse error: %v", err)
			writeJSON(w, http.StatusBadRequest, failed(err.Error()))
			return
		}

		chosen := s
		if req.Timeout != nil {
			chosen = cfs.New(req.Timeout)
		}
		resp := solveField(chosen, f)
		writeJSON(w, http.StatusOK, resp)
	}
}

func solveField(s solver.Solver, f *field.Field) SolveResponse {
	sol, ok := s.Solve(f)
	if !ok {
		return failed("No solution found")
	}
	if err := verifier.Check(f, sol); err != nil {
		common.Error("httpapi: solver produced a solution the verifier rejected: %v", err)
		return failed("No solution found")
	}
	return solved(field.Render(f, sol))
}

func writeJSON(w http.ResponseWriter, status int, body SolveResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
