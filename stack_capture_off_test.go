//go:build anyerr_notrace

package anyerr

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// With capture compiled out, a trace is never available even when the
// environment toggle asks for one, and nothing else about the container
// changes: display, chain, downcast, and reports behave identically.
func TestNoTraceBuild_CaptureCompiledOut(t *testing.T) {
	t.Setenv(TraceEnv, "1")

	require.Nil(t, New("boom").StackTrace())
	require.Nil(t, From(stderrors.New("boom")).StackTrace())
	require.Nil(t, Wrap(stderrors.New("boom"), "context").StackTrace())
}

func TestNoTraceBuild_ContainerUnchanged(t *testing.T) {
	t.Setenv(TraceEnv, "1")

	root := &dataStoreError{table: "users"}
	err := Wrap(Wrap(root, "query failed"), "request failed")

	require.Equal(t, "request failed", err.Error())
	require.Equal(t, root, RootCause(err))

	got, ok := DowncastRef[*dataStoreError](err)
	require.True(t, ok)
	require.Same(t, root, got)

	want := "request failed\n" +
		"caused by: 0: query failed\n" +
		"caused by: 1: datastore: users"
	require.Equal(t, want, fmt.Sprintf("%+v", err), "no trace block is ever appended")
}

func TestNoTraceBuild_ReportHasNoStack(t *testing.T) {
	t.Setenv(TraceEnv, "1")

	report := ToJSON(New("boom"))
	require.Nil(t, report.Stack)
}
