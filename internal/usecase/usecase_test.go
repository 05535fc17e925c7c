package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/forPelevin/vedit/internal/types"
)

type fakeSource struct {
	commands []string
	next     int
}

func (f *fakeSource) Next(_ context.Context) (string, error) {
	if f.next >= len(f.commands) {
		return "", io.EOF
	}
	cmd := f.commands[f.next]
	f.next++
	return cmd, nil
}

type fakeInterpreter struct {
	instructions map[string]types.Instruction
	currentFiles []string
	err          error
}

func (f *fakeInterpreter) Interpret(_ context.Context, currentFile, cmd string) (types.Instruction, error) {
	f.currentFiles = append(f.currentFiles, currentFile)
	if f.err != nil {
		return types.Instruction{}, f.err
	}
	return f.instructions[cmd], nil
}

type fakeEditor struct {
	applied []types.Instruction
	err     error
}

func (f *fakeEditor) Apply(_ context.Context, in types.Instruction) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.applied = append(f.applied, in)
	return "ok", nil
}

func TestRun_ThreadsCurrentFile(t *testing.T) {
	interp := &fakeInterpreter{instructions: map[string]types.Instruction{
		"trim it":    types.NewTrim("vacation.mp4", "00:01:30", "00:02:45"),
		"add a fade": types.NewAddTransition("trimmed_vacation.mp4", "fade", "00:00:00"),
	}}
	editor := &fakeEditor{}
	uc := New(Deps{
		Source:      &fakeSource{commands: []string{"trim it", "add a fade"}},
		Interpreter: interp,
		Editor:      editor,
	})

	res, err := uc.Run(context.Background(), Input{InitialFile: "vacation.mp4"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Applied != 2 {
		t.Fatalf("expected 2 applied, got %d", res.Applied)
	}
	if res.CurrentFile != "transition_trimmed_vacation.mp4" {
		t.Fatalf("expected current file to follow output, got %q", res.CurrentFile)
	}

	// The second command must see the first command's output file.
	if len(interp.currentFiles) != 2 || interp.currentFiles[1] != "trimmed_vacation.mp4" {
		t.Fatalf("current file not threaded: %v", interp.currentFiles)
	}
	if len(editor.applied) != 2 {
		t.Fatalf("expected 2 editor calls, got %d", len(editor.applied))
	}
}

func TestRun_SkipsBlankCommands(t *testing.T) {
	interp := &fakeInterpreter{instructions: map[string]types.Instruction{}}
	editor := &fakeEditor{}
	uc := New(Deps{
		Source:      &fakeSource{commands: []string{"   ", ""}},
		Interpreter: interp,
		Editor:      editor,
	})

	res, err := uc.Run(context.Background(), Input{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Applied != 0 || len(editor.applied) != 0 {
		t.Fatalf("blank commands must not be applied: %+v", res)
	}
	if len(interp.currentFiles) != 0 {
		t.Fatalf("blank commands must not reach the interpreter")
	}
}

func TestRun_UnknownKeepsCurrentFile(t *testing.T) {
	interp := &fakeInterpreter{instructions: map[string]types.Instruction{
		"gibberish": types.NewUnknown("gibberish"),
	}}
	uc := New(Deps{
		Source:      &fakeSource{commands: []string{"gibberish"}},
		Interpreter: interp,
		Editor:      &fakeEditor{},
	})

	res, err := uc.Run(context.Background(), Input{InitialFile: "vacation.mp4"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Applied != 1 {
		t.Fatalf("unknown is still a valid terminal classification, got applied=%d", res.Applied)
	}
	if res.CurrentFile != "vacation.mp4" {
		t.Fatalf("unknown must not move the current file, got %q", res.CurrentFile)
	}
}

func TestRun_PropagatesInterpreterError(t *testing.T) {
	wantErr := errors.New("boom")
	uc := New(Deps{
		Source:      &fakeSource{commands: []string{"trim it"}},
		Interpreter: &fakeInterpreter{err: wantErr},
		Editor:      &fakeEditor{},
	})

	if _, err := uc.Run(context.Background(), Input{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected interpreter error, got %v", err)
	}
}

func TestRun_PropagatesEditorError(t *testing.T) {
	wantErr := errors.New("sink closed")
	uc := New(Deps{
		Source: &fakeSource{commands: []string{"trim it"}},
		Interpreter: &fakeInterpreter{instructions: map[string]types.Instruction{
			"trim it": types.NewTrim("a.mp4", "00:00:00", "00:00:10"),
		}},
		Editor: &fakeEditor{err: wantErr},
	})

	if _, err := uc.Run(context.Background(), Input{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected editor error, got %v", err)
	}
}
