// Package console reads commands interactively, standing in for the voice
// capture frontend: whatever a speech-to-text layer would transcribe, the
// user types.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "Enter your command (as if speaking): "

type Source struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Source {
	return &Source{scanner: bufio.NewScanner(in), out: out}
}

// Next prompts and reads one line. "exit" and "quit" end the session the
// same way closed input does.
func (s *Source) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("read command: %w", err)
		}
		return "", io.EOF
	}

	line := strings.TrimSpace(s.scanner.Text())
	switch strings.ToLower(line) {
	case "exit", "quit":
		return "", io.EOF
	}
	return line, nil
}
