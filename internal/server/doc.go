// Package server wires and runs the ledger's transport servers.
//
// It owns the HTTP and gRPC lifecycles together with the background
// workers: everything starts under one signal-aware context and everything
// shuts down gracefully when that context ends.
package server
