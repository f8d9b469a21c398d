package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored in ctx", func(t *testing.T) {
		lg := New()
		ctx := context.WithValue(context.Background(), ContextKey, lg)

		require.Same(t, lg, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
