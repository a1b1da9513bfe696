package utils

import "github.com/google/uuid"

// maxTraceIDLen bounds caller-supplied trace ids.
const maxTraceIDLen = 64

// NewTraceID returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// TraceIDOrNew returns incoming when it is a usable trace id and a fresh one
// otherwise. Usable means 1..64 characters from [A-Za-z0-9._-], so the value
// can go into headers and log lines as is.
func TraceIDOrNew(incoming string) string {
	if incoming == "" || len(incoming) > maxTraceIDLen {
		return NewTraceID()
	}
	for _, c := range incoming {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return NewTraceID()
		}
	}
	return incoming
}
