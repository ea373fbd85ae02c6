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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-api-prefix path prefix stripped before route matching
//	-debug enable verbose fault reporting
//	-log-level minimum structured log level
//	-retention-days audit log retention window in days
//	-cleanup-interval how often the log cleanup worker runs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *Config {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var apiPrefix string
	var debug bool
	var logLevel string
	var retentionDays int
	var cleanupInterval time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiPrefix, "api-prefix", "", "API path prefix stripped before route matching")
	flag.BoolVar(&debug, "debug", false, "Verbose fault reporting in error envelopes")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warning, error)")
	flag.IntVar(&retentionDays, "retention-days", 0, "Audit log retention window in days")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Log cleanup worker interval (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &Config{
		App: App{
			Debug: debug,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			APIPrefix:      apiPrefix,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Logs: Logs{
			Level:           logLevel,
			RetentionDays:   retentionDays,
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the
// merge step can fall through to lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
