package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireRaises asserts that f panics with a *Error of the given kind.
func requireRaises(t *testing.T, kind ErrorKind, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		recovered := recover()
		require.NotNil(t, recovered, "expected a raised %v failure", kind)
		err, ok := recovered.(*Error)
		require.True(t, ok, "panic value is not a *spatial.Error: %v", recovered)
		require.Equal(t, kind, err.Kind)
		require.NotEmpty(t, err.Op)
	}()
	f()
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: KindOutOfRange, Op: "Grid.CellIndex", Msg: "body position outside the grid bound"}
	require.Equal(t, "Grid.CellIndex: body position outside the grid bound (out of range)", err.Error())

	require.Equal(t, "runtime", KindRuntime.String())
	require.Equal(t, "invalid argument", KindInvalidArgument.String())
	require.Equal(t, "out of range", KindOutOfRange.String())
}
