// Package console is the tool's terminal logger. Messages may carry colour
// markup such as "$Bold{$Red{text}}", which is rendered as ANSI escapes on a
// terminal and stripped everywhere else.
package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var styles = map[string]string{
	"Bold":    "\x1b[1m",
	"Red":     "\x1b[31m",
	"Green":   "\x1b[32m",
	"Yellow":  "\x1b[33m",
	"Blue":    "\x1b[34m",
	"Magenta": "\x1b[35m",
	"Cyan":    "\x1b[36m",
}

const reset = "\x1b[0m"

// innermost markup group, no nested braces
var markup = regexp.MustCompile(`\$(\w+)\{([^{}]*)\}`)

// ConsoleLogger writes levelled, optionally coloured messages.
type ConsoleLogger struct {
	// DebugLevel enables Debug output when greater than zero.
	DebugLevel int
	// Quiet silences Info output. Warnings and errors are always written.
	Quiet bool

	out   io.Writer
	err   io.Writer
	color bool
}

// Logger is the process-wide logger used by the generator and the CLI.
var Logger = New(colorable.NewColorableStdout(), colorable.NewColorableStderr(), isatty.IsTerminal(os.Stdout.Fd()))

// New returns a ConsoleLogger writing regular output to out and warnings to
// errOut.
func New(out, errOut io.Writer, color bool) *ConsoleLogger {
	return &ConsoleLogger{out: out, err: errOut, color: color}
}

// SetOutput redirects the logger, disabling colour.
func (l *ConsoleLogger) SetOutput(out, errOut io.Writer) {
	l.out = out
	l.err = errOut
	l.color = false
}

// Debug prints when DebugLevel is set.
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.DebugLevel < 1 {
		return
	}
	l.write(l.out, format, args...)
}

// Info prints unless the logger is quiet.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	if l.Quiet {
		return
	}
	l.write(l.out, format, args...)
}

// Warn prints to the error stream.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.err, format, args...)
}

// Printf satisfies gen.Debugger.
func (l *ConsoleLogger) Printf(format string, args ...interface{}) {
	l.Info(format, args...)
}

func (l *ConsoleLogger) write(w io.Writer, format string, args ...interface{}) {
	msg := Render(fmt.Sprintf(format, args...), l.color)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(w, msg)
}

// Render expands colour markup. Unknown style names are kept as plain text.
func Render(s string, color bool) string {
	for {
		next := markup.ReplaceAllStringFunc(s, func(m string) string {
			parts := markup.FindStringSubmatch(m)
			code, ok := styles[parts[1]]
			if !ok || !color {
				return parts[2]
			}
			return code + parts[2] + reset
		})
		if next == s {
			return s
		}
		s = next
	}
}
