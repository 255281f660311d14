package geopattern

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/geopattern/siatechf"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithPoints(42).WithRatio(1.5).LogDiscover(context.Background(), siatechf.Stats{Points: 42, Emitted: 3}, 3, nil)
	out := buf.String()
	assert.Contains(t, out, "discover completed")
	assert.Contains(t, out, "min_ratio=1.5")
	assert.Contains(t, out, "groups=3")

	buf.Reset()
	l.LogSearch(context.Background(), 3, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogger_InfoLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.LogSearch(context.Background(), 2, 4, nil)
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))

	// Must not panic.
	l.LogDiscover(context.Background(), siatechf.Stats{}, 0, errors.New("ignored"))
}

func TestNewLogger_NilHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestApplyOptions_Defaults(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})

	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.Equal(t, siatechf.DefaultMaxPoints, o.maxPoints)
	assert.Zero(t, o.memoryLimit)
}
