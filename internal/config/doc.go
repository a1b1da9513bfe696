// Package config assembles ledger server and client settings.
//
// Sources are layered env, then flags (server only), then the JSON file named
// by CONFIG or -c; a non-zero field in a later layer wins. [GetServerConfig]
// and [GetClientConfig] fill defaults and validate the view each binary needs.
package config
