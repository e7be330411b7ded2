package penman

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsDecodeError(t *testing.T) {
	derr := asDecodeError(errors.New("boom"), 7)
	require.NotNil(t, derr)
	assert.Equal(t, 7, derr.Offset)
	assert.Equal(t, "boom", derr.Msg)
	assert.ErrorIs(t, derr, ErrDecode)

	orig := &DecodeError{Offset: 3, Msg: "bad role"}
	assert.Same(t, orig, asDecodeError(fmt.Errorf("nested: %w", orig), 9))
}

func TestParseUnit_TypedError(t *testing.T) {
	_, _, _, derr := parseUnit("(a :ARG0 )", 0, DefaultRoles())
	require.NotNil(t, derr)
	assert.Equal(t, 9, derr.Offset)

	g, _, end, derr := parseUnit("(a / x)", 0, DefaultRoles())
	require.Nil(t, derr)
	assert.Equal(t, 7, end)
	assert.Equal(t, "a", g.Top())
}
