// Package serve implements the "serve" subcommand: run the solver
// behind an HTTP server.
package serve

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hamao0820/daily-akari-solver/pkg/common"
	"github.com/hamao0820/daily-akari-solver/pkg/httpapi"
	"github.com/hamao0820/daily-akari-solver/pkg/solver/fast"
)

var portFlag int

// ServeCmd starts the HTTP server exposing /health and the solve
// endpoint.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Serve starts an HTTP server with a health check at GET /health
and a solve endpoint at POST /, accepting a JSON body with a "problem"
field.

Example:
  akari-solver serve --port 8080
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf(":%d", portFlag)
		common.Info("listening on %s", addr)
		router := httpapi.NewRouter(fast.Fast{})
		if err := http.ListenAndServe(addr, router); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	ServeCmd.Flags().IntVarP(&portFlag, "port", "p", 8080, "port to listen on")
}

// GetCommand returns the serve command for registration with root.
func GetCommand() *cobra.Command {
	return ServeCmd
}
