// Package pipeline implements the subprocess-orchestration engine of
// spec §4.5 using os/exec exclusively — the one place in the tree that
// is deliberately stdlib-only (see SPEC_FULL.md §4.5: no example in the
// corpus carries a subprocess-orchestration library, and os/exec is the
// only way to open raw OS pipes between sibling child processes).
package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/shpl-lang/shpl/internal/value"
)

// Stage is one element of a resolved pipeline: the already-evaluated
// Value (a Command; at the first position also a String literal or an
// Open-mode FileHandle source; at the last position also a Write/Append-
// mode FileHandle destination) plus whether this stage's stderr should
// be captured rather than inherited.
type Stage struct {
	Value         value.Value
	CaptureStderr bool
}

// CommandOutput is one command's result: its coerced exit code, and its
// captured stderr text if CaptureStderr was set.
type CommandOutput struct {
	ExitCode uint8
	Stderr   *string
}

// Result is the Pipeline Executor's output (spec §4.5): the final
// stdout text (empty when a destination file consumed it) and one
// CommandOutput per Command stage, in input order.
type Result struct {
	Stdout         string
	CommandOutputs []CommandOutput
}

// Run executes stages per spec §4.5's algorithm: the first stage
// supplies the data source (a literal, an opened file, or itself a
// command with no stdin), each subsequent stage is a command piped from
// the previous one's stdout, and the last stage may instead be a
// Write/Append FileHandle destination that consumes the final stdout.
//
// Any OS-level failure (spawn error, I/O error, a missing or
// out-of-range exit code) surfaces as a fatal error; a non-zero command
// exit code is not itself a failure at this layer (spec §4.5's "the
// evaluator layer decides whether an uncaptured non-zero code is
// fatal").
func Run(stages []Stage) (*Result, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline: no stages")
	}

	var sourceFile *os.File
	var literal []byte
	commandStages := stages

	switch v := stages[0].Value.(type) {
	case value.String:
		literal = []byte(v.Text + "\n")
		commandStages = stages[1:]
	case value.FileHandle:
		if v.Mode != value.ModeOpen {
			return nil, fmt.Errorf("pipeline: source file handle must be open, got %s", v.Mode)
		}
		f, err := os.Open(v.Path)
		if err != nil {
			return nil, fmt.Errorf("pipeline: opening source %s: %w", v.Path, err)
		}
		defer f.Close()
		sourceFile = f
		commandStages = stages[1:]
	case value.Command:
		// The first stage is itself the first command; no separate
		// source stage precedes it.
	default:
		return nil, fmt.Errorf("pipeline: unsupported source type %s", v.Type())
	}

	var destFile *os.File
	if n := len(commandStages); n > 0 {
		if fh, ok := commandStages[n-1].Value.(value.FileHandle); ok {
			f, err := openDestination(fh)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			destFile = f
			commandStages = commandStages[:n-1]
		}
	}

	if len(commandStages) == 0 {
		return nil, fmt.Errorf("pipeline: no commands to run")
	}

	cmds := make([]*exec.Cmd, len(commandStages))
	stderrBufs := make([]*bytes.Buffer, len(commandStages))
	for i, stage := range commandStages {
		cmdValue, ok := stage.Value.(value.Command)
		if !ok {
			return nil, fmt.Errorf("pipeline: stage %d is not a command (%s)", i, stage.Value.Type())
		}
		cmds[i] = exec.Command(cmdValue.Program, cmdValue.Arguments...)
		if stage.CaptureStderr {
			stderrBufs[i] = &bytes.Buffer{}
			cmds[i].Stderr = stderrBufs[i]
		} else {
			cmds[i].Stderr = os.Stderr
		}
	}

	switch {
	case sourceFile != nil:
		cmds[0].Stdin = sourceFile
	case literal != nil:
		cmds[0].Stdin = bytes.NewReader(literal)
	}

	for i := 0; i < len(cmds)-1; i++ {
		r, err := cmds[i].StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("pipeline: wiring stage %d: %w", i, err)
		}
		cmds[i+1].Stdin = r
	}

	var stdoutBuf bytes.Buffer
	last := cmds[len(cmds)-1]
	if destFile != nil {
		last.Stdout = destFile
	} else {
		last.Stdout = &stdoutBuf
	}

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("pipeline: starting stage %d (%s): %w", i, cmd.Path, err)
		}
	}

	outputs := make([]CommandOutput, len(cmds))
	for i, cmd := range cmds {
		waitErr := cmd.Wait()
		if waitErr != nil {
			if _, isExit := waitErr.(*exec.ExitError); !isExit {
				return nil, fmt.Errorf("pipeline: waiting for stage %d: %w", i, waitErr)
			}
		}
		code := cmd.ProcessState.ExitCode()
		if code < 0 || code > 255 {
			return nil, fmt.Errorf("pipeline: stage %d exited without a usable exit code: %v", i, waitErr)
		}
		out := CommandOutput{ExitCode: uint8(code)}
		if stderrBufs[i] != nil {
			text := stderrBufs[i].String()
			out.Stderr = &text
		}
		outputs[i] = out
	}

	return &Result{Stdout: stdoutBuf.String(), CommandOutputs: outputs}, nil
}

func openDestination(fh value.FileHandle) (*os.File, error) {
	switch fh.Mode {
	case value.ModeWrite:
		f, err := os.Create(fh.Path)
		if err != nil {
			return nil, fmt.Errorf("pipeline: opening destination %s: %w", fh.Path, err)
		}
		return f, nil
	case value.ModeAppend:
		f, err := os.OpenFile(fh.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("pipeline: opening destination %s: %w", fh.Path, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("pipeline: destination file handle must be write or append, got %s", fh.Mode)
	}
}
