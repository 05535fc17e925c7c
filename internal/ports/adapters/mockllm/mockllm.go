// Package mockllm interprets commands with keyword matching in place of a
// real language model. The adapter keeps the shape of an LLM client — prompt
// templating, latency, a current-file hint — while the actual "inference" is
// the deterministic classifier in internal/domain/command.
package mockllm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/forPelevin/vedit/internal/domain/command"
	"github.com/forPelevin/vedit/internal/types"
)

const promptTemplate = `Parse the following voice command for video editing:

Current video file: {current_file}
Voice Command: {voice_command}
`

type Adapter struct {
	parser *command.Parser
	delay  time.Duration
	logger *zap.Logger
}

// New builds the adapter. delay simulates model latency per call; zero means
// no delay, which is what tests want.
func New(parser *command.Parser, delay time.Duration, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{parser: parser, delay: delay, logger: logger}
}

func (a *Adapter) Interpret(ctx context.Context, currentFile, cmd string) (types.Instruction, error) {
	a.logger.Debug("mock llm prompt", zap.String("prompt", renderPrompt(currentFile, cmd)))

	if a.delay > 0 {
		t := time.NewTimer(a.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return types.Instruction{}, ctx.Err()
		case <-t.C:
		}
	}

	// Classification sees only the command text; the current file must not
	// leak into extraction.
	inst := a.parser.Classify(cmd)

	// When the command named no file, the session's current file wins over
	// the default sentinel.
	if currentFile != "" && inst.FileName == a.parser.Vocab().DefaultFile {
		inst = inst.Retarget(currentFile)
	}
	return inst, nil
}

// renderPrompt fills the template the way a real client would before sending
// it to a model.
func renderPrompt(currentFile, cmd string) string {
	if currentFile == "" {
		currentFile = command.DefaultFileName
	}
	r := strings.NewReplacer(
		"{current_file}", currentFile,
		"{voice_command}", cmd,
	)
	return r.Replace(promptTemplate)
}
