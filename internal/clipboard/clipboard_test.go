package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Copy(t *testing.T) {
	m := &Memory{}
	assert.NoError(t, m.Copy("first"))
	assert.NoError(t, m.Copy("second"))
	assert.Equal(t, "second", m.Text)
	assert.Equal(t, 2, m.Copies)
}

func TestMemory_Failure(t *testing.T) {
	m := &Memory{Err: ErrUnavailable}
	err := m.Copy("text")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, m.Text)
}

func TestDisabled(t *testing.T) {
	err := Disabled{}.Copy("text")
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "disabled")
}
