package letter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoConverter is returned when no document converter is configured.
var ErrNoConverter = errors.New("no document converter configured")

// Converter turns plain letter text into a document (PDF).
type Converter interface {
	Convert(ctx context.Context, text string) ([]byte, error)
}

// CommandConverter pipes the text to an external program's stdin and
// returns its stdout, e.g. ["pandoc", "-f", "markdown", "-o", "-", "-t", "pdf"].
type CommandConverter struct {
	Command []string
	Timeout time.Duration
}

func (c CommandConverter) Convert(ctx context.Context, text string) ([]byte, error) {
	if len(c.Command) == 0 || strings.TrimSpace(c.Command[0]) == "" {
		return nil, ErrNoConverter
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := truncateRunes(strings.TrimSpace(stderr.String()), 256)
		return nil, fmt.Errorf("convert with %s: %w (%s)", c.Command[0], err, msg)
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("convert with %s: empty output", c.Command[0])
	}
	return stdout.Bytes(), nil
}
