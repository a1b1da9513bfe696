// Package tui implements the terminal agreement browser of the client.
//
// The browser works on the local cache filled by the sync service: it lists
// the wallet's agreements and signature packets, shows slot usage, copies
// content identifiers, decrypts documents to disk and attaches new
// signatures.
package tui
