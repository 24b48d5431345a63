package logging_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/prodgraph/internal/logging"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := logging.NewLogger(logging.Config{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logging.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logging.ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel("loud"))
}

func TestFieldsReachCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewLoggerFromCore(core).Named("planner").With(logging.String("run_id", "r1"))

	l.Info("run finished",
		logging.Int("nodes", 4),
		logging.Float64("cross_flow", 2.5),
		logging.Bool("clustered", true),
		logging.Duration("took", time.Second),
		logging.Err(errors.New("boom")),
		logging.Any("k", []int{1}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "planner", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "r1", fields["run_id"])
	assert.Equal(t, int64(4), fields["nodes"])
	assert.Equal(t, 2.5, fields["cross_flow"])
	assert.Equal(t, true, fields["clustered"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := logging.NewLoggerFromCore(core)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")
	assert.Equal(t, 2, logs.Len())
}

func TestDefault(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	logging.SetDefault(logging.NewLoggerFromCore(core))
	logging.SetDefault(nil)
	logging.Default().Info("via default")
	assert.Equal(t, 1, logs.Len())

	nop := logging.NewNopLogger()
	nop.Error("dropped")
	assert.NoError(t, nop.With(logging.Int("a", 1)).Named("x").Sync())
}
