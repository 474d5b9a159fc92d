// Package styles holds the color handling for mgit's reports.
//
// Styling is a pure formatting concern: a Palette maps a semantic state
// (dirty, unpushed, clean) to a lipgloss style, and the disabled
// palette renders text without any escape codes. Detection follows the
// NO_COLOR convention and disables color automatically when stdout is
// not an interactive terminal.
package styles

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

// Mode controls when color output is produced.
type Mode int

const (
	// ModeAuto enables color only on an interactive terminal with
	// NO_COLOR unset.
	ModeAuto Mode = iota
	// ModeAlways forces color on.
	ModeAlways
	// ModeNever forces color off.
	ModeNever
)

// ParseMode parses a --color flag value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
}

// Enabled reports whether color should be emitted for f.
func (m Mode) Enabled(f *os.File) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Palette holds the styles used by the report renderer.
type Palette struct {
	// Header styles repo names in pull mode and the root path line in
	// status mode.
	Header lipgloss.Style
	// Dirty (bright red) marks uncommitted changes; also used for
	// error-marked results.
	Dirty lipgloss.Style
	// Unpushed (bright yellow) marks clean repos with commits their
	// upstream lacks.
	Unpushed lipgloss.Style
	// Clean (bright green) marks repos with nothing to report.
	Clean lipgloss.Style
}

// New returns the report palette. With enabled false every style is the
// zero style and Render passes text through untouched.
func New(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Header:   lipgloss.NewStyle().Bold(true),
		Dirty:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Unpushed: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Clean:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
