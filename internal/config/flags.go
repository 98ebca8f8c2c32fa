package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form. An unset address
// (zero port) renders as an empty string so mergo treats it as absent.
func (a *NetAddress) String() string {
	if a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" string into the receiver.
// Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// decimalValue adapts decimal.Decimal to the flag.Value interface so an
// unparseable -min-increment is reported at parse time instead of being
// dropped.
type decimalValue struct {
	d decimal.Decimal
}

// String renders the value; a zero (unset) value renders empty so mergo
// treats it as absent.
func (v *decimalValue) String() string {
	if v.d.IsZero() {
		return ""
	}
	return v.d.String()
}

// Set parses a decimal string into the receiver. Implements flag.Value.
func (v *decimalValue) Set(value string) error {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return errors.New("minimum bid increment must be a decimal number")
	}

	v.d = parsed
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "12h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-min-increment minimum bid increment (e.g., "2", "0.50")
//	-allowed-origins comma-separated CORS origins
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var minIncrement decimalValue
	var allowedOrigins string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Var(&minIncrement, "min-increment", "Minimum bid increment (e.g., 2, 0.50)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")

	flag.Parse()

	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
			MinimumBidIncrement: minIncrement.d,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: origins,
		},
		JSONFilePath: jsonConfigPath,
	}
}
