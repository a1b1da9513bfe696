package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be in 1..65535")
	errAddressHost   = errors.New("host must be an IP address or localhost")
)

// NetAddress is a host:port pair usable as a pflag value. An empty host means
// all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the ledger server command line.
//
//	-a, --address          HTTP listen address host:port
//	    --grpc-address     gRPC listen address host:port
//	-f, --blob-dir         directory for uploaded blobs
//	-d, --database-dsn     PostgreSQL DSN
//	-c, --config           JSON config file
//	    --token-sign-key, --token-issuer, --token-duration
//	    --login-skew       maximum age of a login message
//	    --request-timeout  per-request deadline
//	    --hash-key         upload integrity key
//	    --chain-id         EIP-712 domain chain id
//	    --key-scheme       default key derivation scheme
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg        StructuredConfig
		httpAddr   NetAddress
		grpcAddr   NetAddress
		fs         = pflag.NewFlagSet("agreement-ledger", pflag.ContinueOnError)
		app        = &cfg.App
		storageCfg = &cfg.Storage
	)

	fs.VarP(&httpAddr, "address", "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address host:port")
	fs.StringVarP(&storageCfg.Files.BlobDir, "blob-dir", "f", "", "directory for uploaded blobs")
	fs.StringVarP(&storageCfg.DB.DSN, "database-dsn", "d", "", "PostgreSQL DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file")
	fs.StringVar(&app.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&app.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&app.TokenDuration, "token-duration", 0, "JWT lifetime, e.g. 1h")
	fs.DurationVar(&app.LoginSkew, "login-skew", 0, "maximum age of a login message")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request deadline, e.g. 30s")
	fs.StringVar(&app.HashKey, "hash-key", "", "upload integrity key")
	fs.Int64Var(&app.ChainID, "chain-id", 0, "EIP-712 domain chain id")
	fs.StringVar(&app.KeyScheme, "key-scheme", "", "default key derivation scheme")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return &cfg, nil
}

// String renders host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[v6]:port". Hostnames other than
// localhost are rejected.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host, a.Port = host, port
	return nil
}

// Type names the value in pflag usage output.
func (a *NetAddress) Type() string { return "host:port" }
