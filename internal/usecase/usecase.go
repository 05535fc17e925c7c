package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/forPelevin/vedit/internal/ports"
)

type Deps struct {
	Source      ports.CommandSource
	Interpreter ports.Interpreter
	Editor      ports.Editor
	Logger      *zap.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return Usecase{d: d}
}

type Input struct {
	// InitialFile is the video the session starts on; empty means none until
	// a command names one.
	InitialFile string
}

type Result struct {
	// Applied counts instructions handed to the editor, unknown included.
	Applied int
	// CurrentFile is the file a follow-up session would continue editing.
	CurrentFile string
}

// Run drives one editing session: read a command, interpret it, apply the
// instruction, and thread the current file forward. The session ends when the
// source is exhausted.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	current := in.InitialFile
	applied := 0

	for {
		cmd, err := u.d.Source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("next command: %w", err)
		}
		if strings.TrimSpace(cmd) == "" {
			u.d.Logger.Warn("no command detected")
			continue
		}

		inst, err := u.d.Interpreter.Interpret(ctx, current, cmd)
		if err != nil {
			return Result{}, fmt.Errorf("interpret command: %w", err)
		}

		if inst.FileName != "" {
			current = inst.FileName
		}

		summary, err := u.d.Editor.Apply(ctx, inst)
		if err != nil {
			return Result{}, fmt.Errorf("apply instruction: %w", err)
		}

		// The edit's output becomes the file later commands operate on.
		if inst.OutputFile != "" {
			current = inst.OutputFile
		}
		applied++

		u.d.Logger.Info("instruction applied",
			zap.String("action", string(inst.Action)),
			zap.String("current_file", current),
			zap.String("summary", summary),
		)
	}

	return Result{Applied: applied, CurrentFile: current}, nil
}
