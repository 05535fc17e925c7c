package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tmp := t.TempDir()
	script := filepath.Join(tmp, "commands.txt")
	if err := os.WriteFile(script, []byte("trim a.mp4 from 1 to 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty is valid", Config{}, ""},
		{"existing script", Config{ScriptPath: script}, ""},
		{"missing script", Config{ScriptPath: filepath.Join(tmp, "nope.txt")}, "stat script"},
		{"missing vocabulary", Config{VocabPath: filepath.Join(tmp, "nope.yaml")}, "stat vocabulary"},
		{"negative delay", Config{Delay: -time.Second}, "delay must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRun_ScriptedSession(t *testing.T) {
	tmp := t.TempDir()
	scriptPath := filepath.Join(tmp, "commands.txt")
	script := strings.Join([]string{
		"# demo",
		"Trim the file vacation.mp4 from 1:30 to 2:45.",
		"Add text saying 'Welcome' at the center at timestamp 15 seconds.",
		"I like turtles",
	}, "\n")
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Config{
		ScriptPath: scriptPath,
		Stdout:     &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{
		"Output file: trimmed_vacation.mp4",
		// The second command names no file, so it continues editing the
		// first command's output.
		"Input file: trimmed_vacation.mp4",
		"Output file: text_trimmed_vacation.mp4",
		"Original command: I like turtles",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_ScriptedSessionJSON(t *testing.T) {
	tmp := t.TempDir()
	scriptPath := filepath.Join(tmp, "commands.txt")
	if err := os.WriteFile(scriptPath, []byte("Trim the file vacation.mp4 from 1:30 to 2:45.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Config{
		ScriptPath: scriptPath,
		JSON:       true,
		Stdout:     &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `{"action":"trim","file_name":"vacation.mp4","start_time":"00:01:30","end_time":"00:02:45","output_file":"trimmed_vacation.mp4"}`
	if strings.TrimSpace(out.String()) != want {
		t.Fatalf("unexpected JSON output:\n got %s\nwant %s", out.String(), want)
	}
}

func TestRun_VocabularyOverride(t *testing.T) {
	tmp := t.TempDir()
	scriptPath := filepath.Join(tmp, "commands.txt")
	if err := os.WriteFile(scriptPath, []byte("add a slide transition to intro.mp4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	vocabPath := filepath.Join(tmp, "vocab.yaml")
	if err := os.WriteFile(vocabPath, []byte("transition_types: [fade, cut, dissolve, wipe, slide]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Config{
		ScriptPath: scriptPath,
		VocabPath:  vocabPath,
		Stdout:     &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "transition_type: slide") {
		t.Fatalf("expected slide transition in output:\n%s", out.String())
	}
}

func TestRun_RejectsNonMediaInitialFile(t *testing.T) {
	err := Run(context.Background(), Config{InitialFile: "notes.txt", Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "unrecognized media extension") {
		t.Fatalf("expected media extension error, got %v", err)
	}
}

func TestRun_InteractiveBannerAndExit(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{
		Stdin:  strings.NewReader("exit\n"),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "VOICE-CONTROLLED VIDEO EDITING PROTOTYPE") {
		t.Fatalf("expected banner in interactive mode:\n%s", out.String())
	}
}
