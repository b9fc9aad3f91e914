// Package teatest drives huh forms in tests without a terminal.
//
// The driver calls Update directly and drains the returned Cmds on the test
// goroutine, so a form can be filled in key by key and its bound values
// inspected afterwards. Cursor blink Cmds block on timers and are skipped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// MaxDrainDepth bounds Cmd chains so a looping form cannot hang a test.
const MaxDrainDepth = 100

// cmdTimeout separates message factories (microseconds) from blink timers (~530ms).
const cmdTimeout = 10 * time.Millisecond

// Driver feeds key presses to a form.
type Driver struct {
	T    *testing.T
	Form *huh.Form

	// Quitting is set once the form asks the runtime to quit.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps f and drains its Init command.
func New(t *testing.T, f *huh.Form, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Form: f}
	for _, opt := range opts {
		opt(d)
	}
	d.drainCmd(d.Form.Init(), 0)
	return d
}

// State reports whether the form is still running, completed or aborted.
func (d *Driver) State() huh.FormState {
	return d.Form.State
}

// Send dispatches msg and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting || d.Form.State != huh.StateNormal {
		return
	}
	d.drainCmd(d.update(msg), 0)
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// PressDownN moves the cursor down n times.
func (d *Driver) PressDownN(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.PressDown()
	}
}

// Toggle flips the highlighted option of a multi-select.
func (d *Driver) Toggle() {
	d.T.Helper()
	d.PressKey('x')
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the form as currently rendered.
func (d *Driver) View() string {
	return d.Form.View()
}

func (d *Driver) update(msg tea.Msg) tea.Cmd {
	m, cmd := d.Form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		d.Form = f
	}
	return cmd
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			d.drainCmd(sub, depth+1)
		}
		return
	}

	switch msg.(type) {
	case tea.QuitMsg, tea.InterruptMsg:
		d.Quitting = true
		return
	}

	d.drainCmd(d.update(msg), depth+1)
}

// execCmdWithTimeout runs cmd and gives up after cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages from bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
