// Package clog prints level-prefixed, colored messages through a standard
// library logger so that lumberjack and stdout writers keep working.
package clog

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

var (
	prefixInfo     = color.New(color.FgHiBlue).Sprint("[INFO]")
	prefixWarning  = color.New(color.FgHiYellow).Sprint("[WARNING]")
	prefixError    = color.New(color.FgHiRed).Sprint("[ERROR]")
	prefixSuccess  = color.New(color.FgHiGreen).Sprint("[SUCCESS]")
	prefixProgress = color.New(color.FgHiCyan).Sprint("[PROGRESS]")
	prefixDone     = color.New(color.FgHiCyan).Sprint("[DONE]")
)

type Logger struct {
	l        *log.Logger
	terminal io.Writer
}

// New wraps l. Progress lines go to terminal only, pass nil to drop them.
func New(l *log.Logger, terminal io.Writer) *Logger {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	if terminal == nil {
		terminal = io.Discard
	}
	return &Logger{l: l, terminal: terminal}
}

// Discard returns a logger that prints nothing.
func Discard() *Logger {
	return New(nil, nil)
}

// Std logs through the default logger and prints progress to color.Output.
func Std() *Logger {
	return New(log.Default(), color.Output)
}

func (c *Logger) Infof(format string, v ...any) {
	c.output(prefixInfo, format, v...)
}

func (c *Logger) Warnf(format string, v ...any) {
	c.output(prefixWarning, format, v...)
}

func (c *Logger) Errorf(format string, v ...any) {
	c.output(prefixError, format, v...)
}

func (c *Logger) Successf(format string, v ...any) {
	c.output(prefixSuccess, format, v...)
}

func (c *Logger) Fatalf(format string, v ...any) {
	c.l.Fatal(prefixError + " " + fmt.Sprintf(format, v...))
}

// Progressf rewrites the current terminal line.
func (c *Logger) Progressf(format string, v ...any) {
	fmt.Fprintf(c.terminal, "\r%s %s", prefixProgress, fmt.Sprintf(format, v...))
}

// Donef terminates a progress line.
func (c *Logger) Donef(format string, v ...any) {
	fmt.Fprintf(c.terminal, "\r%s %s\n", prefixDone, fmt.Sprintf(format, v...))
}

func (c *Logger) output(prefix, format string, v ...any) {
	c.l.Output(3, prefix+" "+fmt.Sprintf(format, v...))
}
