package commands

import (
	"log/slog"
	"path/filepath"
	"strings"

	"gpfinder-backend/lib/serviceutil"
	"gpfinder-backend/services/surgeries"
	"gpfinder-backend/services/surgeries/storage"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func readRawDatasets(config Config, postcode string) surgeries.RawDatasets {
	listings, err := surgeries.ReadListings(surgeries.ListingsPath(config.RawDir, postcode))
	if err != nil {
		serviceutil.Fatal("failed to read listings", err)
	}
	details, err := surgeries.ReadDetails(surgeries.DetailsPath(config.RawDir, postcode))
	if err != nil {
		serviceutil.Fatal("failed to read surgery details", err)
	}
	reviews, err := surgeries.ReadReviews(surgeries.ReviewsPath(config.RawDir, postcode))
	if err != nil {
		serviceutil.Fatal("failed to read surgery reviews", err)
	}
	return surgeries.RawDatasets{Listings: listings, Details: details, Reviews: reviews}
}

func mergeDatasets(datasets surgeries.RawDatasets) []surgeries.MergedRow {
	rows, err := surgeries.FlattenAndAddDetails(datasets.Listings, datasets.Details)
	if err != nil {
		// the raw datasets do not describe the same surgeries, producing a
		// table from them would be silently inconsistent
		serviceutil.Fatal("dataset merge failed", err)
	}
	return surgeries.AddReviewMetrics(rows, datasets.Reviews)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <postcode>",
	Short: "Merges a postcode's raw datasets into the summary table.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		postcode := strings.ReplaceAll(args[0], " ", "")

		rows := mergeDatasets(readRawDatasets(config, postcode))

		outPath := filepath.Join(config.ProcessedDir, postcode+"_surgery_summaries.csv")
		writers := []storage.Writer{}

		csvWriter, err := storage.NewCSVWriter(outPath)
		if err != nil {
			serviceutil.Fatal("failed to open csv writer", err)
		}
		writers = append(writers, csvWriter)

		if config.PostgresDsn != "" {
			pgWriter, err := storage.NewPostgresWriter(config.PostgresDsn)
			if err != nil {
				serviceutil.Fatal("failed to open postgres writer", err)
			}
			writers = append(writers, pgWriter)
		}

		for _, w := range writers {
			if err := w.Write(rows); err != nil {
				serviceutil.Fatal("failed to write summary table", err)
			}
			if err := w.Close(); err != nil {
				serviceutil.Fatal("failed to close summary writer", err)
			}
		}

		slog.Info("merge done", "rows", len(rows), "out", outPath)
	},
}
