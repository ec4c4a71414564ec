package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// status prints one line about a merged file, colored on terminals.
func status(w io.Writer, file string, conflict bool) {
	c := color.New(color.FgGreen)
	msg := "merged"
	if conflict {
		c = color.New(color.FgRed, color.Bold)
		msg = "conflict"
	}
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintf(w, "%s %s\n", c.Sprint(msg), file)
}
