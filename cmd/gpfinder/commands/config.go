package commands

import (
	"os"

	"gpfinder-backend/lib/configutil"
	configlibsql "gpfinder-backend/lib/configutil/libsql"
	"gpfinder-backend/lib/serviceutil"
)

type Config struct {
	// page cache database, defaults to a local sqlite file
	Database configlibsql.Struct `json:"database"`
	// directory holding the per-postcode raw datasets
	RawDir string `json:"raw_dir"`
	// directory the merged summary table is written to
	ProcessedDir string `json:"processed_dir"`
	// fixed delay between page fetches, in milliseconds
	DelayMs int `json:"delay_ms"`
	// when set, the merged table is also written to this PostgreSQL database
	PostgresDsn string `json:"postgres_dsn"`
}

func readConfig() Config {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	if config.Database.File == "" && config.Database.Url == "" {
		config.Database.File = "pages.db"
	}
	if config.RawDir == "" {
		config.RawDir = "raw"
	}
	if config.ProcessedDir == "" {
		config.ProcessedDir = "processed"
	}
	if config.DelayMs == 0 {
		config.DelayMs = 500
	}
	return config
}
