// Package script feeds commands from a file, one per line, for batch runs
// and integration tests.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

type Source struct {
	commands []string
	next     int
}

// Load reads the command file. Blank lines and '#' comments are skipped.
func Load(path string) (*Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	var commands []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	return &Source{commands: commands}, nil
}

func (s *Source) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.next >= len(s.commands) {
		return "", io.EOF
	}
	cmd := s.commands[s.next]
	s.next++
	return cmd, nil
}
