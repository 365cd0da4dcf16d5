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
//	-a server listen address in format [host]:[port]
//	-server-url base URL of the registry server (device side)
//	-d database DSN (server side, PostgreSQL)
//	-device-db device SQLite file path
//	-data-dir device snapshot directory
//	-max-cards bitset capacity cap
//	-sync-interval bitset refresh interval (e.g., "60s")
//	-status-interval enroll/reachability poll interval (e.g., "2s")
//	-request-timeout outbound request timeout (e.g., "5s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var deviceDBPath string
	var dataDir string
	var maxCards uint64
	var syncInterval time.Duration
	var statusInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&serverURL, "server-url", "", "Registry server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&deviceDBPath, "device-db", "", "Device SQLite file path")
	flag.StringVar(&dataDir, "data-dir", "", "Device snapshot directory")
	flag.Uint64Var(&maxCards, "max-cards", 0, "Bitset capacity cap")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Bitset refresh interval (e.g., 60s)")
	flag.DurationVar(&statusInterval, "status-interval", 0, "Status poll interval (e.g., 2s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MaxCards: maxCards,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			DeviceDB: DeviceDB{
				DSN: deviceDBPath,
			},
			Files: Files{
				DataDir: dataDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			StatusInterval: statusInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
