package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func restoreLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestNewLogger_EntryFields(t *testing.T) {
	restoreLevel(t)
	t.Setenv(LevelEnv, "")

	var buf bytes.Buffer
	l := newLogger(&buf, "ledger-server")
	l.Info().Str("agreement", "a-1").Msg("stored")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ledger-server", entry["role"])
	assert.Equal(t, "a-1", entry["agreement"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	require.Contains(t, entry, "func")
	assert.True(t, strings.HasSuffix(entry["func"].(string), "TestNewLogger_EntryFields"))
}

func TestLevelFromEnv(t *testing.T) {
	restoreLevel(t)

	tests := []struct {
		name string
		env  string
		want zerolog.Level
	}{
		{name: "unset defaults to debug", env: "", want: zerolog.DebugLevel},
		{name: "info", env: "info", want: zerolog.InfoLevel},
		{name: "upper case warn", env: " WARN ", want: zerolog.WarnLevel},
		{name: "garbage defaults to debug", env: "loud", want: zerolog.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.env)
			assert.Equal(t, tt.want, levelFromEnv())

			newLogger(&bytes.Buffer{}, "x")
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNewLogger_RespectsGlobalLevel(t *testing.T) {
	restoreLevel(t)
	t.Setenv(LevelEnv, "warn")

	var buf bytes.Buffer
	l := newLogger(&buf, "quiet")
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)[zerolog.MessageFieldName])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)
	l.Error().Msg("nothing")
	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	restoreLevel(t)
	t.Setenv(LevelEnv, "")

	var buf bytes.Buffer
	parent := newLogger(&buf, "parent-role")
	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "t-1").Logger()
	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("scope", "request").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via ctx")
	assert.Equal(t, "request", decodeEntry(t, &buf)["scope"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("via request")
	assert.Equal(t, "request", decodeEntry(t, &buf)["scope"])

	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewClientLogger_WritesToConfiguredFile(t *testing.T) {
	restoreLevel(t)
	t.Setenv(LevelEnv, "")
	path := filepath.Join(t.TempDir(), "client.log")
	t.Setenv(ClientLogFileEnv, path)

	l := NewClientLogger("agreement-client")
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"agreement-client"`)
}

func TestNewClientLogger_FallsBackWhenFileUnavailable(t *testing.T) {
	restoreLevel(t)
	t.Setenv(ClientLogFileEnv, filepath.Join(t.TempDir(), "missing", "dir", "client.log"))

	assert.NotNil(t, NewClientLogger("agreement-client"))
}
