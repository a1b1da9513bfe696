package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_IsV7(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestTraceIDOrNew(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "empty", incoming: "", keep: false},
		{name: "plain", incoming: "caller-trace", keep: true},
		{name: "uuid", incoming: "0190a5f2-7c1e-7000-8000-000000000001", keep: true},
		{name: "dotted", incoming: "svc.req_42", keep: true},
		{name: "newline injection", incoming: "abc\nlevel=error", keep: false},
		{name: "space", incoming: "a b", keep: false},
		{name: "too long", incoming: strings.Repeat("a", maxTraceIDLen+1), keep: false},
		{name: "max length", incoming: strings.Repeat("a", maxTraceIDLen), keep: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceIDOrNew(tt.incoming)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.NotEqual(t, tt.incoming, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
