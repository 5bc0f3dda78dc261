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
//	-a diagnostics server address in format [host]:[port]
//	-d local database file path
//	-b photo blob directory
//	-storage-address remote object storage base URL
//	-crm-address CRM/ERP base URL
//	-api-token bearer token for outbound requests
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-poll-interval sync queue poll interval (e.g., "30s")
//	-workers number of concurrent sync workers
//	-probe-url connectivity probe endpoint
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var blobDir string
	var storageAddress string
	var crmAddress string
	var apiToken string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var workerCount int
	var probeURL string
	var logFile string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Diagnostics server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&blobDir, "b", "", "Photo blob directory")
	flag.StringVar(&storageAddress, "storage-address", "", "Remote object storage base URL")
	flag.StringVar(&crmAddress, "crm-address", "", "CRM/ERP base URL")
	flag.StringVar(&apiToken, "api-token", "", "Bearer token for outbound requests")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Sync queue poll interval (e.g., 30s)")
	flag.IntVar(&workerCount, "workers", 0, "Number of concurrent sync workers")
	flag.StringVar(&probeURL, "probe-url", "", "Connectivity probe endpoint")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BlobDir: blobDir,
			},
		},
		Adapter: Adapter{
			StorageAddress: storageAddress,
			CRMAddress:     crmAddress,
			APIToken:       apiToken,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
			WorkerCount:  workerCount,
		},
		Monitor: Monitor{
			ProbeURL: probeURL,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Log: Log{
			FilePath: logFile,
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
