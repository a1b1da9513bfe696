// Package http implements the HTTP transport of the reference ledger server.
//
// It exposes the ledger API under /api, a pinning endpoint compatible with
// the client's pin adapter, and a read-only gateway under /ipfs. Tracing,
// access logging, compression, bearer authentication and upload integrity
// checks are handled here before requests reach the service layer.
package http
