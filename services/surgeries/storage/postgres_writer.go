package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"gpfinder-backend/lib/scrapers/nhs"
	"gpfinder-backend/services/surgeries"
)

// PostgresWriter persists the merged table to PostgreSQL, replacing any
// previous run for the same postcodes (rows conflict on id).
type PostgresWriter struct {
	db *sql.DB
}

func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	var openingTimes strings.Builder
	for _, day := range nhs.Weekdays {
		fmt.Fprintf(&openingTimes, "\t\t\topening_times_%s TEXT NOT NULL DEFAULT '',\n", day)
	}

	_, err := pw.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS surgery_summaries (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			nhs_url         TEXT NOT NULL,
			address         TEXT NOT NULL DEFAULT '',
			phone_number    TEXT NOT NULL DEFAULT '',
			distance_miles  TEXT NOT NULL DEFAULT '',
			is_in_catchment BOOLEAN NOT NULL,
			website         TEXT NOT NULL DEFAULT '',
%s			num_reviews     BIGINT NOT NULL DEFAULT 0,
			avg_rating      NUMERIC(4,2) NOT NULL DEFAULT 0,
			min_rating      BIGINT NOT NULL DEFAULT 0,
			max_rating      BIGINT NOT NULL DEFAULT 0
		);
	`, openingTimes.String()))
	return err
}

func (pw *PostgresWriter) Write(rows []surgeries.MergedRow) error {
	if len(rows) == 0 {
		return nil
	}

	columns := surgeries.MergedColumns()
	valueStrings := make([]string, 0, len(rows))
	valueArgs := make([]interface{}, 0, len(rows)*len(columns))

	for idx, row := range rows {
		placeholders := make([]string, len(columns))
		for i := range columns {
			placeholders[i] = fmt.Sprintf("$%d", idx*len(columns)+i+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		valueArgs = append(valueArgs,
			row.Id, row.Name, row.NhsUrl, row.Address, row.PhoneNumber,
			row.DistanceMiles, row.IsInCatchment, row.Website,
		)
		for _, hours := range row.OpeningTimes {
			valueArgs = append(valueArgs, hours)
		}
		valueArgs = append(valueArgs, row.NumReviews, row.AvgRating, row.MinRating, row.MaxRating)
	}

	query := fmt.Sprintf(`
		INSERT INTO surgery_summaries (%s)
		VALUES %s
		ON CONFLICT (id) DO UPDATE SET %s
	`,
		strings.Join(columns, ","),
		strings.Join(valueStrings, ","),
		conflictUpdates(columns),
	)

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func conflictUpdates(columns []string) string {
	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns {
		if c == "id" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return strings.Join(updates, ", ")
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
