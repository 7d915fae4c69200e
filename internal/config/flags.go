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

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-k session token
//	-a directory server base URL
//	-request-timeout outbound request timeout (e.g., "30s")
//	-d local database DSN
//	-p photo cache directory
//	-device-id device identity file
//	-log log file path
//	-i sync interval (e.g., "5m")
//	-lifetime maximum sync job lifetime (e.g., "2h")
//	-report-usage enable usage reporting
//	-listen development server address in format [host]:[port]
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("founder-directory", flag.ContinueOnError)

	var listenAddress NetAddress
	var sessionToken, serverURL, dsn, photoDir, deviceIDPath, logPath, jsonConfigPath string
	var requestTimeout, syncInterval, maxLifetime time.Duration
	var reportUsage bool

	fs.StringVar(&sessionToken, "k", "", "Session token")
	fs.StringVar(&serverURL, "a", "", "Directory server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.StringVar(&photoDir, "p", "", "Photo cache directory")
	fs.StringVar(&deviceIDPath, "device-id", "", "Device identity file")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.DurationVar(&syncInterval, "i", 0, "Sync interval (e.g., 5m)")
	fs.DurationVar(&maxLifetime, "lifetime", 0, "Maximum sync job lifetime (e.g., 2h)")
	fs.BoolVar(&reportUsage, "report-usage", false, "Enable usage reporting")
	fs.Var(&listenAddress, "listen", "Development server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionToken: sessionToken,
			ReportUsage:  reportUsage,
			LogPath:      logPath,
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Files: Files{PhotoDir: photoDir, DeviceIDPath: deviceIDPath},
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			MaxLifetime:  maxLifetime,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither Host nor Port are set.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
