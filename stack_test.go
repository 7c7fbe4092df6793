package anyerr

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackTrace_DisabledByDefault(t *testing.T) {
	t.Setenv(TraceEnv, "")

	require.Nil(t, New("no trace").StackTrace())
	require.Nil(t, From(stderrors.New("no trace")).StackTrace())
}

func TestStackTrace_ZeroDisables(t *testing.T) {
	t.Setenv(TraceEnv, "0")

	require.Nil(t, New("no trace").StackTrace())
}

func TestStackTrace_NilStack(t *testing.T) {
	var s *Stack
	require.Nil(t, s.Frames())
	require.Empty(t, s.String())
}

func TestStackTrace_NilContainer(t *testing.T) {
	var e *Error
	require.Nil(t, e.StackTrace())
}
