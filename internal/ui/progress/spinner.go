// Package progress provides a spinner shown while a batch of git
// operations is in flight. It renders to stderr so stdout stays clean
// for the report.
package progress

import (
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// Spinner wraps a Bubbletea spinner for simple non-interactive use.
type Spinner struct {
	program *tea.Program
	done    chan struct{}
	running bool
}

// spinnerModel is the internal Bubbletea model.
type spinnerModel struct {
	spinner spinner.Model
	message string
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyPressMsg:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// New creates a spinner with a fixed message.
func New(message string) *Spinner {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	model := spinnerModel{spinner: sp, message: message}
	// Stderr output and no signal handler: interrupts belong to the
	// batch's context, not the spinner.
	program := tea.NewProgram(model, tea.WithoutSignalHandler(), tea.WithOutput(os.Stderr))

	return &Spinner{program: program, done: make(chan struct{})}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if s.running {
		return
	}
	s.running = true
	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	if !s.running {
		return
	}
	s.running = false

	s.program.Quit()
	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}
	fmt.Fprint(os.Stderr, "\r\033[K")
}
