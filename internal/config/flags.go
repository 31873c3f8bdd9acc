package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env runtime environment ("production" enables secure cookies)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token duration (e.g., "24h")
//	-refresh-token-duration refreshed token duration (e.g., "168h")
//	-request-timeout inbound request timeout (e.g., "15s")
//	-cosmic-bucket content store bucket slug
//	-cosmic-read-key content store read key
//	-cosmic-write-key content store write key
//	-pages-dir directory with prebuilt pages
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var environment string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var refreshTokenDuration time.Duration
	var requestTimeout time.Duration
	var bucketSlug, readKey, writeKey string
	var pagesDir string

	fs := flag.NewFlagSet("coffee-closer-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Runtime environment")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 24h)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refreshed token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&bucketSlug, "cosmic-bucket", "", "Content store bucket slug")
	fs.StringVar(&readKey, "cosmic-read-key", "", "Content store read key")
	fs.StringVar(&writeKey, "cosmic-write-key", "", "Content store write key")
	fs.StringVar(&pagesDir, "pages-dir", "", "Directory with prebuilt pages")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment:          environment,
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
		},
		Storage: Storage{
			Cosmic: Cosmic{
				BucketSlug: bucketSlug,
				ReadKey:    readKey,
				WriteKey:   writeKey,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PagesDir:       pagesDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
