// Package fixtures runs the end-to-end scripts under testdata/fixtures
// through the full lex→parse→type-check→evaluate pipeline and snapshots
// their observable behavior, grounded on go-dws
// internal/interp/fixture_test.go's category-table snapshot harness
// (gkampitakis/go-snaps), scaled down to this language's much smaller
// fixture set.
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/shpl-lang/shpl/internal/builtins"
	"github.com/shpl-lang/shpl/internal/eval"
	"github.com/shpl-lang/shpl/internal/parser"
	"github.com/shpl-lang/shpl/internal/runtime"
	"github.com/shpl-lang/shpl/internal/scripterr"
	"github.com/shpl-lang/shpl/internal/typecheck"
)

const fixturesDir = "../../testdata/fixtures"

type outcome struct {
	Stdout   string
	ExitCode int
	Err      string
}

func runFixture(t *testing.T, name string) outcome {
	t.Helper()
	source, err := os.ReadFile(filepath.Join(fixturesDir, name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}

	root, err := parser.Parse(string(source))
	if err != nil {
		return outcome{ExitCode: scripterr.ExitCode(err), Err: err.Error()}
	}
	if err := typecheck.Check(root); err != nil {
		return outcome{ExitCode: scripterr.ExitCode(err), Err: err.Error()}
	}

	var stdout bytes.Buffer
	env := builtins.NewEnv(strings.NewReader(""), &stdout, &stdout)
	evaluator, err := eval.New(root, runtime.DefaultMaxCallStackDepth, env)
	if err != nil {
		t.Fatalf("building evaluator for %s: %v", name, err)
	}

	code, err := evaluator.Run(root)
	if err != nil {
		return outcome{Stdout: stdout.String(), ExitCode: scripterr.ExitCode(err), Err: err.Error()}
	}
	return outcome{Stdout: stdout.String(), ExitCode: int(code)}
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []string{
		"arithmetic_branching.shpl",
		"interpolation_array.shpl",
		"for_loop.shpl",
		"pipeline_capture.shpl",
	}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			result := runFixture(t, name)
			if result.Err != "" {
				t.Fatalf("fixture %s failed unexpectedly: %s", name, result.Err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", name), result.Stdout)
		})
	}
}

func TestUncapturedNonZeroExitIsFatal(t *testing.T) {
	result := runFixture(t, "uncaptured_exit_fails.shpl")
	if result.Err == "" {
		t.Fatal("expected an ExecutionError, got none")
	}
	if result.ExitCode != 103 {
		t.Errorf("exit code = %d, want 103", result.ExitCode)
	}
	if strings.Contains(result.Stdout, "unreached") {
		t.Error("stdout contains \"unreached\", but the pipeline failure should have stopped execution first")
	}
}

func TestDestinationRedirectWritesFile(t *testing.T) {
	const path = "/tmp/shpl_fixture_destination_redirect.txt"
	os.Remove(path)
	defer os.Remove(path)

	result := runFixture(t, "destination_redirect.shpl")
	if result.Err != "" {
		t.Fatalf("fixture failed: %s", result.Err)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "" {
		t.Errorf("stdout = %q, want empty (stdout was redirected to a file)", result.Stdout)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading destination file: %v", err)
	}
	if string(content) != "x\n" {
		t.Errorf("destination file content = %q, want \"x\\n\"", string(content))
	}
}

func TestBorrowCheckFailure(t *testing.T) {
	result := runFixture(t, "borrow_check_failure.shpl")
	if result.Err == "" {
		t.Fatal("expected a borrow-check ExecutionError, got none")
	}
	if result.ExitCode != 103 {
		t.Errorf("exit code = %d, want 103", result.ExitCode)
	}
}
