package solve

import (
	"bytes"
	"strings"
	"testing"
)

func TestSolveFromStdinScenario1(t *testing.T) {
	cmd := GetCommand()
	cmd.SetIn(strings.NewReader("1 3\n.2.\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--solver", "fast", "--quiet"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "> found answer\n") {
		t.Fatalf("output = %q, want a leading \"> found answer\" banner", out.String())
	}
	if !strings.Contains(out.String(), "A") {
		t.Fatalf("output = %q, want at least one lit cell", out.String())
	}
}

func TestSolveUnsatisfiablePrintsBannerAndExitsZero(t *testing.T) {
	cmd := GetCommand()
	cmd.SetIn(strings.NewReader("3 3\n2.2\n...\n..0\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--solver", "naive", "--quiet"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v, want nil (unsatisfiable is exit 0)", err)
	}
	if strings.TrimSpace(out.String()) != "> answer not found" {
		t.Fatalf("output = %q, want \"> answer not found\"", out.String())
	}
}

func TestSolveRejectsEmptyInput(t *testing.T) {
	cmd := GetCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--quiet"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

func TestSolveRejectsMalformedDimensions(t *testing.T) {
	cmd := GetCommand()
	cmd.SetIn(strings.NewReader("x 3\n.2.\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--quiet"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected a parse error for a non-integer H")
	}
}
