package anyerr

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_DefaultShowsTopMessageOnly(t *testing.T) {
	err := Wrap(stderrors.New("file not found"), "failed to read config")

	require.Equal(t, "failed to read config", fmt.Sprintf("%v", err))
	require.Equal(t, "failed to read config", fmt.Sprintf("%s", err))
	require.Equal(t, `"failed to read config"`, fmt.Sprintf("%q", err))
}

func TestFormat_ExtendedSingleCause(t *testing.T) {
	t.Setenv(TraceEnv, "0")

	err := Wrap(From(stderrors.New("file not found")), "failed to read config")

	want := "failed to read config\n" +
		"caused by: 0: file not found"
	require.Equal(t, want, fmt.Sprintf("%+v", err))
}

func TestFormat_ExtendedNumbersFromZero(t *testing.T) {
	t.Setenv(TraceEnv, "0")

	root := stderrors.New("disk failure")
	err := Wrap(Wrap(Wrap(root, "query failed"), "lookup failed"), "request failed")

	want := "request failed\n" +
		"caused by: 0: lookup failed\n" +
		"caused by: 1: query failed\n" +
		"caused by: 2: disk failure"
	require.Equal(t, want, fmt.Sprintf("%+v", err))
}

func TestFormat_ExtendedNoCauses(t *testing.T) {
	t.Setenv(TraceEnv, "0")

	err := New("standalone")
	require.Equal(t, "standalone", fmt.Sprintf("%+v", err))
}

func TestFormat_StableUnderRepetition(t *testing.T) {
	t.Setenv(TraceEnv, "0")

	err := Wrap(stderrors.New("root"), "context")
	require.Equal(t, fmt.Sprintf("%+v", err), fmt.Sprintf("%+v", err))
}

func TestFormat_NilContainer(t *testing.T) {
	var e *Error
	require.Equal(t, "<nil>", e.Error())
}

func TestFormat_ZeroValueContainer(t *testing.T) {
	var e Error

	require.Equal(t, "<nil>", e.Error())
	require.Equal(t, "<nil>", fmt.Sprintf("%+v", &e))
	require.Nil(t, e.Unwrap())
	require.Nil(t, e.StackTrace())
	require.Empty(t, displays(&e))
}
