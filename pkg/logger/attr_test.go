package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestOutcome(t *testing.T) {
	attr := logger.Outcome(validator.Fail("The value cannot be empty."))
	require.Equal(t, "outcome", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "passed", g[0].Key)
	assert.False(t, g[0].Value.Bool())
	assert.Equal(t, "message", g[1].Key)
	assert.Equal(t, "The value cannot be empty.", g[1].Value.String())
}

func TestScalarAttrs(t *testing.T) {
	tests := []struct {
		attr  slog.Attr
		key   string
		value any
	}{
		{logger.Component("registry"), "component", "registry"},
		{logger.Entity("customer.Customer"), "entity", "customer.Customer"},
		{logger.Kind("customer"), "kind", "customer"},
		{logger.Record(4), "record", int64(4)},
		{logger.Source("records.yaml"), "source", "records.yaml"},
		{logger.Duration(time.Second), "duration", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.Source("").Equal(slog.Attr{}))
}
