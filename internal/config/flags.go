package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a sync service base URL
//	-d local database file
//	-c/-config json file path with configs
//	-client-id per-device client id override
//	-request-timeout request timeout (e.g., "15s")
//	-sync-interval periodic sync interval, 0 disables polling (e.g., "5m")
//	-retry-base first retry delay (e.g., "1s")
//	-retry-max-exponent backoff exponent cap
//	-log-file log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notesync", flag.ContinueOnError)

	var (
		serverAddress    string
		databaseDSN      string
		jsonConfigPath   string
		clientID         string
		requestTimeout   time.Duration
		syncInterval     time.Duration
		retryBase        time.Duration
		retryMaxExponent int
		logFile          string
	)

	fs.StringVar(&serverAddress, "a", "", "Sync service base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&clientID, "client-id", "", "Client id override")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	fs.DurationVar(&retryBase, "retry-base", 0, "First retry delay (e.g., 1s)")
	fs.IntVar(&retryMaxExponent, "retry-max-exponent", 0, "Backoff exponent cap")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{ClientID: clientID},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			RetryBase:        retryBase,
			RetryMaxExponent: retryMaxExponent,
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
