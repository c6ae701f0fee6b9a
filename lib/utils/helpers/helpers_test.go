package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`GetRequestID from pure ctx check`, func(t *testing.T) {
		require.Equal(t, "", GetRequestID(context.TODO()))
		require.Equal(t, "", GetRequestID(nil))
	})

	t.Run(`GetRequestID from filled ctx check`, func(t *testing.T) {
		ctx := GetContextWithRequestID(context.TODO(), "someRequestID")
		require.Equal(t, "someRequestID", GetRequestID(ctx))
	})

	t.Run(`Truncate check`, func(t *testing.T) {
		require.Equal(t, "abc", Truncate("abc", 5))
		require.Equal(t, "ab...", Truncate("abcdef", 2))
		require.Equal(t, "सम्...", Truncate("सम्राट", 3))
		require.Equal(t, "abc", Truncate("abc", 0))
	})
}
