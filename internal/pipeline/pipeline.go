package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forPelevin/vedit/internal/config"
	"github.com/forPelevin/vedit/internal/domain/command"
	"github.com/forPelevin/vedit/internal/ports"
	"github.com/forPelevin/vedit/internal/ports/adapters/console"
	"github.com/forPelevin/vedit/internal/ports/adapters/mockllm"
	"github.com/forPelevin/vedit/internal/ports/adapters/script"
	"github.com/forPelevin/vedit/internal/ports/adapters/simulator"
	"github.com/forPelevin/vedit/internal/usecase"
)

type Config struct {
	// InitialFile is the video the session starts on; may be empty.
	InitialFile string
	// ScriptPath switches from interactive input to a command file.
	ScriptPath string
	// VocabPath points at optional YAML vocabulary overrides.
	VocabPath string
	// JSON prints instructions as JSON objects instead of the simulation.
	JSON bool
	// Delay simulates model latency per command.
	Delay time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	Logger *zap.Logger
}

func (c Config) Validate() error {
	if c.Delay < 0 {
		return errors.New("delay must be >= 0")
	}
	if c.ScriptPath != "" {
		if _, err := os.Stat(c.ScriptPath); err != nil {
			return fmt.Errorf("stat script: %w", err)
		}
	}
	if c.VocabPath != "" {
		if _, err := os.Stat(c.VocabPath); err != nil {
			return fmt.Errorf("stat vocabulary: %w", err)
		}
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	vocab := command.DefaultVocabulary()
	if cfg.VocabPath != "" {
		v, err := config.LoadVocabulary(cfg.VocabPath, logger)
		if err != nil {
			return err
		}
		vocab = v
	}
	parser, err := command.NewParser(vocab)
	if err != nil {
		return err
	}

	if cfg.InitialFile != "" && !isMediaFile(vocab, cfg.InitialFile) {
		return fmt.Errorf("initial file %q: unrecognized media extension", cfg.InitialFile)
	}

	// adapters
	var source ports.CommandSource
	if cfg.ScriptPath != "" {
		s, err := script.Load(cfg.ScriptPath)
		if err != nil {
			return err
		}
		source = s
		logger.Info("running scripted session", zap.String("script", cfg.ScriptPath))
	} else {
		printBanner(stdout)
		source = console.New(stdin, stdout)
	}
	llm := mockllm.New(parser, cfg.Delay, logger)
	editor := simulator.New(stdout, cfg.JSON)

	uc := usecase.New(usecase.Deps{
		Source:      source,
		Interpreter: llm,
		Editor:      editor,
		Logger:      logger,
	})

	res, err := uc.Run(ctx, usecase.Input{InitialFile: cfg.InitialFile})
	if err != nil {
		return err
	}
	logger.Info("session finished",
		zap.Int("applied", res.Applied),
		zap.String("current_file", res.CurrentFile),
	)
	return nil
}

func isMediaFile(v command.Vocabulary, name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range v.MediaExtensions {
		if strings.HasSuffix(lower, "."+strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "VOICE-CONTROLLED VIDEO EDITING PROTOTYPE")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "Commands are processed through a mock LLM; no real")
	fmt.Fprintln(w, "media is touched. Type 'exit' to quit.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example commands you can try:")
	fmt.Fprintln(w, "- 'Trim the file vacation.mp4 from 1:30 to 2:45'")
	fmt.Fprintln(w, "- 'Add text saying \"Welcome\" at the center at timestamp 15 seconds'")
	fmt.Fprintln(w, "- 'Add a fade transition at the beginning of the video'")
	fmt.Fprintln(w)
}

// ensure adapters implement ports
var _ ports.CommandSource = (*console.Source)(nil)
var _ ports.CommandSource = (*script.Source)(nil)
var _ ports.Interpreter = (*mockllm.Adapter)(nil)
var _ ports.Editor = (*simulator.Editor)(nil)
