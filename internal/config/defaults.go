package config

const (
	defaultLibraryDir     = "~/movies"
	defaultLogDir         = "~/.local/share/reelsort/logs"
	defaultLedgerPath     = "~/.local/share/reelsort/ledger.db"
	defaultOMDbBaseURL    = "https://www.omdbapi.com"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultFetchBatchSize = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			LedgerPath: defaultLedgerPath,
		},
		OMDb: OMDb{
			BaseURL: defaultOMDbBaseURL,
		},
		Workflow: Workflow{
			FetchBatchSize: defaultFetchBatchSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
