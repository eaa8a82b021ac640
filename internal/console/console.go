// Package console prints progress markers for interactive runs.
package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console writes prefixed progress messages.
type Console struct {
	out     io.Writer
	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	failure pterm.PrefixPrinter
}

// New creates a Console writing to w, or stdout when w is nil.
func New(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		out:     w,
		info:    *pterm.Info.WithWriter(w),
		success: *pterm.Success.WithPrefix(pterm.Prefix{Text: "✔", Style: pterm.Success.Prefix.Style}).WithWriter(w),
		warning: *pterm.Warning.WithWriter(w),
		failure: *pterm.Error.WithPrefix(pterm.Prefix{Text: "✘", Style: pterm.Error.Prefix.Style}).WithWriter(w),
	}
}

// LogInfo prints an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	c.info.Printfln(format, a...)
}

// LogSuccess prints a success marker.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.success.Printfln(format, a...)
}

// LogWarning prints a warning.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warning.Printfln(format, a...)
}

// LogError prints a failure marker.
func (c *Console) LogError(format string, a ...interface{}) {
	c.failure.Printfln(format, a...)
}

var pathColor = color.New(color.FgCyan, color.Bold)

// Saved lists the written artifacts.
func (c *Console) Saved(paths ...string) {
	io.WriteString(c.out, "\nResults saved to:\n")
	for _, p := range paths {
		pathColor.Fprintf(c.out, "  - %s\n", p)
	}
}
