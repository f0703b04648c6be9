// Package httpapi exposes the solver core over HTTP: a health check
// and a POST endpoint that accepts a puzzle and returns a solution.
package httpapi

import (
	"encoding/json"
	"errors"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
)

// SolveRequest is the expected POST body. Problem may be either a
// newline-delimited string or a character matrix; timeout is optional
// and only meaningful for the CFS solver.
type SolveRequest struct {
	Problem json.RawMessage `json:"problem"`
	Timeout *uint64         `json:"timeout,omitempty"`
}

// SolveResponse is always returned with one of Solution/Error set.
type SolveResponse struct {
	Solution interface{} `json:"solution"`
	Error    *string     `json:"error"`
}

func solved(rendered string) SolveResponse {
	return SolveResponse{Solution: rendered, Error: nil}
}

func failed(message string) SolveResponse {
	msg := message
	return SolveResponse{Solution: nil, Error: &msg}
}

// toField parses the request's Problem payload, accepting either a
// plain string (fed straight to field.ParseText given h/w derived from
// the payload) or a JSON array-of-arrays character matrix.
func (r SolveRequest) toField() (*field.Field, error) {
	var asString string
	if err := json.Unmarshal(r.Problem, &asString); err == nil {
		lines := splitLines(asString)
		if len(lines) == 0 {
			return nil, errors.New("level data is empty")
		}
		w := len(lines[0])
		return field.ParseText(len(lines), w, asString)
	}

	var matrix [][]string
	if err := json.Unmarshal(r.Problem, &matrix); err != nil {
		return nil, errors.New("cell parse error")
	}
	return parseMatrix(matrix)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// parseMatrix normalizes a [][]string char matrix into the byte rows
// field.ParseMatrix expects; width/shape validation is left to it.
func parseMatrix(rows [][]string) (*field.Field, error) {
	bytes := make([][]byte, len(rows))
	for i, row := range rows {
		line := make([]byte, len(row))
		for j, cell := range row {
			if len(cell) != 1 {
				return nil, errors.New("cell parse error")
			}
			line[j] = cell[0]
		}
		bytes[i] = line
	}
	return field.ParseMatrix(bytes)
}
