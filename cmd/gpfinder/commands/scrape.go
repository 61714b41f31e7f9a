package commands

import (
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"gpfinder-backend/lib/restyutil"
	"gpfinder-backend/lib/scrapers/nhs"
	"gpfinder-backend/lib/serviceutil"
	"gpfinder-backend/lib/sqliteutil"
	"gpfinder-backend/lib/telemetry"
	"gpfinder-backend/services/surgeries"
	"gpfinder-backend/services/surgeries/db"

	"github.com/spf13/cobra"
)

var scrapeDebug *bool

func init() {
	scrapeDebug = scrapeCmd.Flags().Bool("debug", false, "Enable debug logging and HTTP exchange dumps.")
	rootCmd.AddCommand(scrapeCmd)
}

func openPageCache(config Config) (*sql.DB, error) {
	if config.Database.Url != "" {
		cache, err := config.Database.OpenDB()
		if err != nil {
			return nil, err
		}
		_, err = cache.Exec(db.Schema)
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			cache.Close()
			return nil, err
		}
		return cache, nil
	}
	return sqliteutil.OpenDB(db.Schema, config.Database.File)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <postcode>",
	Short: "Scrapes the GP listing, details and reviews for a postcode into the raw datasets.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := readConfig()
		postcode := strings.ReplaceAll(args[0], " ", "")

		if *scrapeDebug {
			telemetry.InitSlog(true)
			telemetry.InstrumentPerfStats(ctx)
		}

		client, err := nhs.NewClient()
		if err != nil {
			serviceutil.Fatal("failed to initialize nhs client", err)
		}
		if *scrapeDebug {
			client.SetInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/gpfinder"))
		}

		cache, err := openPageCache(config)
		if err != nil {
			serviceutil.Fatal("failed to open page cache", err)
		}
		defer cache.Close()

		pipeline := surgeries.Pipeline{
			Client: client,
			Query:  db.New(cache),
			Delay:  time.Duration(config.DelayMs) * time.Millisecond,
		}

		t1 := time.Now()
		datasets := pipeline.Run(ctx, postcode)
		t2 := time.Now()

		if len(datasets.Listings) == 0 {
			slog.Info("no gp surgeries found", "postcode", postcode)
			return
		}

		err = surgeries.WriteListings(surgeries.ListingsPath(config.RawDir, postcode), datasets.Listings)
		if err != nil {
			serviceutil.Fatal("failed to write listings", err)
		}
		err = surgeries.WriteDetails(surgeries.DetailsPath(config.RawDir, postcode), datasets.Details)
		if err != nil {
			serviceutil.Fatal("failed to write surgery details", err)
		}
		err = surgeries.WriteReviews(surgeries.ReviewsPath(config.RawDir, postcode), datasets.Reviews)
		if err != nil {
			serviceutil.Fatal("failed to write surgery reviews", err)
		}

		slog.Info(
			"scraping done",
			"surgeries", len(datasets.Listings),
			"reviews", len(datasets.Reviews),
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
