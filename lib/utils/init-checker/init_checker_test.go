package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type dependency struct{}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("struct", dependency{}, "pointer", &dependency{}, "string", "")
		})
	})

	t.Run(`nil dependencies check`, func(t *testing.T) {
		require.PanicsWithValue(t, "client dependency not initialized", func() {
			CheckInit("client", nil)
		})
		var typedNil *dependency
		require.PanicsWithValue(t, "pointer dependency not initialized", func() {
			CheckInit("pointer", typedNil)
		})
	})

	t.Run(`bad arguments check`, func(t *testing.T) {
		require.Panics(t, func() { CheckInit("odd") })
		require.Panics(t, func() { CheckInit(1, dependency{}) })
	})
}
