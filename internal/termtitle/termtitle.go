// Package termtitle updates the terminal window title while a batch
// runs, so long pulls are identifiable from the window list.
package termtitle

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// Set writes the window title to f when f is an interactive terminal;
// otherwise it does nothing.
func Set(f *os.File, title string) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	fmt.Fprint(f, ansi.SetWindowTitle(title))
}

// Clear resets the window title.
func Clear(f *os.File) {
	Set(f, "")
}
