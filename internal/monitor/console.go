package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/and161185/cpufreq-monitor/model"
)

// clearLine returns the cursor to column 0 and erases the previous status line.
const clearLine = "\r\x1b[K"

// Console prints operator-facing notices and the per-tick status line.
type Console struct {
	out         io.Writer
	interactive bool
	status      *color.Color
	dirty       bool
}

// NewConsole writes to out. An interactive console rewrites a single status
// line in place; otherwise every tick gets its own uncoloured line.
func NewConsole(out io.Writer, interactive bool) *Console {
	c := &Console{
		out:         out,
		interactive: interactive,
		status:      color.New(color.FgCyan),
	}
	if !interactive {
		c.status.DisableColor()
	}
	return c
}

// StdoutConsole returns a console on stdout, interactive when it is a terminal.
func StdoutConsole() *Console {
	return NewConsole(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// Started announces the run.
func (c *Console) Started(cores int, selected *int, path string) {
	fmt.Fprintf(c.out, "Detected %d CPU cores\n", cores)
	if selected != nil {
		fmt.Fprintf(c.out, "Monitoring %s only\n", model.CoreLabel(*selected))
	}
	fmt.Fprintf(c.out, "Recording CPU frequencies to %s\n", path)
	fmt.Fprintln(c.out, "Press Ctrl+C to stop recording")
}

// Status shows the latest row.
func (c *Console) Status(row model.Row, single bool) {
	var line string
	switch {
	case single && len(row.Readings) == 1:
		r := row.Readings[0]
		line = fmt.Sprintf("%s - %s: %.2f MHz", row.Timestamp(), model.CoreLabel(r.Core), r.Value())
	case row.Average != nil:
		line = fmt.Sprintf("%s - Avg: %.2f MHz", row.Timestamp(), *row.Average)
	default:
		line = fmt.Sprintf("%s - Avg: %.2f MHz", row.Timestamp(), 0.0)
	}

	if c.interactive {
		fmt.Fprint(c.out, clearLine)
		c.status.Fprint(c.out, line)
		c.dirty = true
		return
	}
	c.status.Fprintln(c.out, line)
}

// Stopped ends the status line and reports where the data went.
func (c *Console) Stopped(path string) {
	if c.dirty {
		fmt.Fprintln(c.out)
		c.dirty = false
	}
	fmt.Fprintln(c.out, "Stopping frequency monitoring")
	fmt.Fprintf(c.out, "Data saved to %s\n", path)
}
