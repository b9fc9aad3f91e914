// Package clipboard copies composed prompts to the host clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the host has no usable clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier puts text on a clipboard.
type Copier interface {
	Copy(text string) error
}

type system struct{}

// System returns a Copier backed by the host clipboard utilities.
func System() Copier {
	return system{}
}

func (system) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Disabled is a Copier that always reports the clipboard as unavailable.
type Disabled struct{}

func (Disabled) Copy(string) error {
	return fmt.Errorf("%w: disabled by configuration", ErrUnavailable)
}

// Memory keeps the last copied text in process. Useful for tests.
type Memory struct {
	Text   string
	Copies int
	Err    error
}

func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Copies++
	return nil
}
