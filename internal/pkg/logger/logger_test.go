package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = With(ctx, "request_id", "abc")

	Infof(ctx, "resolved %s", "110001")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "resolved 110001", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
}

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		l, err := New(level, "json")
		require.NoError(t, err, level)
		require.NotNil(t, l)
	}
}
