package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("summarize: %w", Wrap(CodeUpstreamUnreachable, "summarizer unreachable", cause))

	require.True(t, IsCode(err, CodeUpstreamUnreachable))
	require.False(t, IsCode(err, CodeUpstreamTimeout))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "summarize: summarizer unreachable: dial tcp: connection refused", err.Error())
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(errors.New("boom")))
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, "message only", Wrap(CodeInvalidInput, "message only", nil).Error())
}
