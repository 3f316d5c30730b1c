package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestFields_KeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	Fields(l.Info(), "user_id", "u-1", "count", 3).Msg("UserService:GetUser")

	out := decode(t, &buf)
	assert.Equal(t, "UserService:GetUser", out["message"])
	assert.Equal(t, "u-1", out["user_id"])
	assert.EqualValues(t, 3, out["count"])
}

func TestFields_BareErrorAndNamedError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	Fields(l.Error(), errors.New("boom"), "cause", errors.New("db down")).Msg("failed")

	out := decode(t, &buf)
	assert.Equal(t, "boom", out["error"])
	assert.Equal(t, "db down", out["cause"])
}

func TestFields_DanglingKey(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	Fields(l.Info(), "orphan").Msg("x")

	out := decode(t, &buf)
	assert.Equal(t, "orphan", out["arg0"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json").With().Str("request_id", "abc").Logger()

	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info().Msg("hello")

	out := decode(t, &buf)
	assert.Equal(t, "abc", out["request_id"])

	assert.Same(t, Get(), FromContext(context.Background()))
}
