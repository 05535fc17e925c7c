package ports

import (
	"context"

	"github.com/forPelevin/vedit/internal/types"
)

// CommandSource yields raw command text, one command per call. It abstracts
// over keyboard input, a command script, or a speech-to-text frontend; the
// core never learns where the text came from. Returns io.EOF when the source
// is exhausted.
type CommandSource interface {
	Next(ctx context.Context) (string, error)
}

// Interpreter turns one command into a structured instruction. currentFile is
// the file the session is editing, used when the command names no file.
type Interpreter interface {
	Interpret(ctx context.Context, currentFile, command string) (types.Instruction, error)
}

// Editor consumes an instruction and returns a human-readable summary of
// what was (or would be) done.
type Editor interface {
	Apply(ctx context.Context, in types.Instruction) (string, error)
}
