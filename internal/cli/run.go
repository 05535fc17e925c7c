package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/forPelevin/vedit/internal/pipeline"
)

func run(cmd *cobra.Command, file string) error {
	scriptPath, _ := cmd.Flags().GetString("script")
	vocabPath, _ := cmd.Flags().GetString("vocab")
	jsonOut, _ := cmd.Flags().GetBool("json")
	delay, _ := cmd.Flags().GetDuration("delay")

	if file == "" {
		file = os.Getenv("VEDIT_FILE")
	}
	if vocabPath == "" {
		vocabPath = os.Getenv("VEDIT_VOCAB")
	}

	logger, err := newLogger(getenvDefault("VEDIT_LOG", "warn"))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := pipeline.Config{
		InitialFile: file,
		ScriptPath:  scriptPath,
		VocabPath:   vocabPath,
		JSON:        jsonOut,
		Delay:       delay,
		Logger:      logger,
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}

// newLogger builds the diagnostic logger. Human-facing output goes to stdout
// through the simulator; the logger stays on stderr and defaults to warn so
// interactive sessions are not drowned in JSON.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse VEDIT_LOG %q: %w", level, err)
	}

	lc := zap.NewProductionConfig()
	lc.Level = zap.NewAtomicLevelAt(lvl)
	lc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return lc.Build()
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
