package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(CodeNetwork, "fetch page", cause)

	require.EqualError(t, err, "fetch page: dial tcp: timeout")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, CodeNetwork))
	require.False(t, IsCode(err, CodeParse))
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("resolve: %w", Wrap(CodeMissingElement, "temperature element not found", nil))

	require.Equal(t, CodeMissingElement, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
}
