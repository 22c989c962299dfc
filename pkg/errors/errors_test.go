package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	err := Wrap(ErrTransport, "post login")
	assert.EqualError(t, err, "post login: transport error")
	assert.True(t, errors.Is(err, ErrTransport))
}
