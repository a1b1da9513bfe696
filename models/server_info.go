package models

// ServerInfo describes the ledger a client talks to. Clients compare ChainID
// with their own before deriving typed-data keys.
type ServerInfo struct {
	Version          string      `json:"version"`
	ChainID          int64       `json:"chainId,omitempty"`
	DefaultKeyScheme KeyScheme   `json:"defaultKeyScheme"`
	KeySchemes       []KeyScheme `json:"keySchemes"`
	MaxPageLimit     uint64      `json:"maxPageLimit"`
}
