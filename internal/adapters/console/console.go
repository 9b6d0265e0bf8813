// Package console writes buildpack progress output in the format build platforms expect.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"github.com/fatih/color"
)

const (
	topicPrefix  = "-----> "
	indent       = "       "
	errorPrefix  = " !     "
	warningTitle = "###### WARNING:"
)

var _ ports.Console = (*Console)(nil)

// Console implements ports.Console.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	topic   *color.Color
	warning *color.Color
	failure *color.Color
}

// New creates a Console writing to stdout.
func New() *Console {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Console writing to w.
func NewWithWriter(w io.Writer) *Console {
	return &Console{
		out:     w,
		topic:   color.New(color.FgCyan, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

// DisableColor strips escape codes from all output.
func (c *Console) DisableColor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range []*color.Color{c.topic, c.warning, c.failure} {
		col.DisableColor()
	}
}

// Topic prints a phase header.
func (c *Console) Topic(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.topic.Fprint(c.out, topicPrefix)
	_, _ = fmt.Fprintln(c.out, msg)
}

// Puts prints each line of msg indented under the current topic.
func (c *Console) Puts(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range lines(msg) {
		_, _ = fmt.Fprintln(c.out, indent+line)
	}
}

// Warn prints a warning block.
func (c *Console) Warn(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out)
	_, _ = c.warning.Fprintln(c.out, warningTitle)
	for _, line := range lines(msg) {
		_, _ = fmt.Fprintln(c.out, indent+line)
	}
}

// Error prints an error block followed by the raw output that caused it.
func (c *Console) Error(msg, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.failure.Fprintln(c.out, " !")
	for _, line := range lines(msg) {
		_, _ = c.failure.Fprintln(c.out, errorPrefix+line)
	}
	_, _ = c.failure.Fprintln(c.out, " !")
	if output != "" {
		_, _ = io.WriteString(c.out, output)
		if !strings.HasSuffix(output, "\n") {
			_, _ = fmt.Fprintln(c.out)
		}
	}
}

func lines(msg string) []string {
	return strings.Split(strings.TrimRight(msg, "\n"), "\n")
}
