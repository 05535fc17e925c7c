// Package simulator renders instructions instead of editing media. It is the
// output consumer of the pipeline: given an instruction it prints what a real
// editing backend would do and reports a one-line summary.
package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/forPelevin/vedit/internal/types"
)

type Editor struct {
	out  io.Writer
	json bool
}

// New builds the simulator. In JSON mode each instruction is printed as a
// single JSON object per line, the stable machine-readable contract.
func New(out io.Writer, jsonMode bool) *Editor {
	return &Editor{out: out, json: jsonMode}
}

func (e *Editor) Apply(ctx context.Context, in types.Instruction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if e.json {
		b, err := json.Marshal(in)
		if err != nil {
			return "", fmt.Errorf("marshal instruction: %w", err)
		}
		fmt.Fprintln(e.out, string(b))
		return summary(in), nil
	}

	if in.Action == types.ActionUnknown {
		fmt.Fprintf(e.out, "\nCould not determine a specific edit command.\nOriginal command: %s\n", in.OriginalCommand)
		return summary(in), nil
	}

	fmt.Fprintln(e.out, "\n--- SIMULATING VIDEO EDITING ---")
	fmt.Fprintf(e.out, "Action: %s\n", in.Action)
	fmt.Fprintf(e.out, "Input file: %s\n", in.FileName)
	fmt.Fprintf(e.out, "Output file: %s\n", in.OutputFile)

	switch in.Action {
	case types.ActionTrim:
		fmt.Fprintf(e.out, "start_time: %s\n", in.StartTime)
		fmt.Fprintf(e.out, "end_time: %s\n", in.EndTime)
	case types.ActionAddText:
		fmt.Fprintf(e.out, "text: %s\n", in.Text)
		fmt.Fprintf(e.out, "position: %s\n", in.Position)
		fmt.Fprintf(e.out, "time: %s\n", in.Time)
	case types.ActionAddTransition:
		fmt.Fprintf(e.out, "transition_type: %s\n", in.TransitionType)
		fmt.Fprintf(e.out, "time: %s\n", in.Time)
	}

	s := summary(in)
	fmt.Fprintf(e.out, "\nResult: %s\n", s)
	return s, nil
}

func summary(in types.Instruction) string {
	if in.Action == types.ActionUnknown {
		return "No edit applied: command not recognized."
	}
	return fmt.Sprintf("Successfully applied %s to %s and saved as %s", in.Action, in.FileName, in.OutputFile)
}
