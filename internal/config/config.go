// Package config loads optional vocabulary overrides from a YAML file, so
// deployments can extend keyword lists or change defaults without a rebuild.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/forPelevin/vedit/internal/domain/command"
)

// vocabularyFile is the on-disk shape. Every field is optional; absent fields
// keep their compiled-in defaults.
type vocabularyFile struct {
	TrimKeywords       []string `yaml:"trim_keywords"`
	TextKeywords       []string `yaml:"text_keywords"`
	TransitionKeywords []string `yaml:"transition_keywords"`
	Positions          []string `yaml:"positions"`
	TransitionTypes    []string `yaml:"transition_types"`
	MediaExtensions    []string `yaml:"media_extensions"`

	Defaults struct {
		File           string `yaml:"file"`
		Text           string `yaml:"text"`
		Position       string `yaml:"position"`
		Transition     string `yaml:"transition"`
		TextTime       string `yaml:"text_time"`
		TransitionTime string `yaml:"transition_time"`
	} `yaml:"defaults"`
}

// LoadVocabulary reads the YAML file at path and merges it over the default
// vocabulary. Lists present in the file replace the defaults wholesale.
func LoadVocabulary(path string, logger *zap.Logger) (command.Vocabulary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return command.Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}

	var f vocabularyFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return command.Vocabulary{}, fmt.Errorf("parse vocabulary YAML: %w", err)
	}

	v := command.DefaultVocabulary()
	if len(f.TrimKeywords) > 0 {
		v.TrimKeywords = f.TrimKeywords
	}
	if len(f.TextKeywords) > 0 {
		v.TextKeywords = f.TextKeywords
	}
	if len(f.TransitionKeywords) > 0 {
		v.TransitionKeywords = f.TransitionKeywords
	}
	if len(f.Positions) > 0 {
		v.Positions = f.Positions
	}
	if len(f.TransitionTypes) > 0 {
		v.TransitionTypes = f.TransitionTypes
	}
	if len(f.MediaExtensions) > 0 {
		v.MediaExtensions = f.MediaExtensions
	}
	if f.Defaults.File != "" {
		v.DefaultFile = f.Defaults.File
	}
	if f.Defaults.Text != "" {
		v.DefaultText = f.Defaults.Text
	}
	if f.Defaults.Position != "" {
		v.DefaultPosition = f.Defaults.Position
	}
	if f.Defaults.Transition != "" {
		v.DefaultTransition = f.Defaults.Transition
	}

	// Default times may be written in any accepted format; canonicalize them
	// here so instructions always carry HH:MM:SS.
	if f.Defaults.TextTime != "" {
		t, ok := command.NormalizeTime(f.Defaults.TextTime)
		if !ok {
			return command.Vocabulary{}, fmt.Errorf("invalid defaults.text_time %q", f.Defaults.TextTime)
		}
		v.TextTime = t
	}
	if f.Defaults.TransitionTime != "" {
		t, ok := command.NormalizeTime(f.Defaults.TransitionTime)
		if !ok {
			return command.Vocabulary{}, fmt.Errorf("invalid defaults.transition_time %q", f.Defaults.TransitionTime)
		}
		v.TransitionTime = t
	}

	logger.Debug("vocabulary loaded",
		zap.String("path", path),
		zap.Int("transition_types", len(v.TransitionTypes)),
		zap.Int("media_extensions", len(v.MediaExtensions)),
	)
	return v, nil
}
