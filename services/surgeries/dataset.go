package surgeries

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gpfinder-backend/lib/scrapers/nhs"
)

// Raw dataset locations under the raw data directory, one trio per postcode.

func ListingsPath(dir, postcode string) string {
	return filepath.Join(dir, postcode+"_gp_surgeries.csv")
}

func DetailsPath(dir, postcode string) string {
	return filepath.Join(dir, postcode+"_surgery_details.json")
}

func ReviewsPath(dir, postcode string) string {
	return filepath.Join(dir, postcode+"_surgery_reviews.json")
}

var listingColumns = []string{
	"id", "name", "nhs_url", "address", "phone_number", "distance_miles", "is_in_catchment",
}

func WriteListings(path string, listings []nhs.ListingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(listingColumns); err != nil {
		return err
	}
	for _, l := range listings {
		err := w.Write([]string{
			l.Id, l.Name, l.NhsUrl, l.Address, l.PhoneNumber,
			l.DistanceMiles, strconv.FormatBool(l.IsInCatchment),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func ReadListings(path string) ([]nhs.ListingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	listings := make([]nhs.ListingRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(listingColumns) {
			return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(listingColumns), len(row))
		}
		isInCatchment, err := strconv.ParseBool(row[6])
		if err != nil {
			return nil, fmt.Errorf("%s: bad is_in_catchment value %q", path, row[6])
		}
		listings = append(listings, nhs.ListingRecord{
			Id:            row[0],
			Name:          row[1],
			NhsUrl:        row[2],
			Address:       row[3],
			PhoneNumber:   row[4],
			DistanceMiles: row[5],
			IsInCatchment: isInCatchment,
		})
	}
	return listings, nil
}

func WriteDetails(path string, details []nhs.SurgeryDetail) error {
	return writeJson(path, details)
}

func ReadDetails(path string) ([]nhs.SurgeryDetail, error) {
	return readJson[nhs.SurgeryDetail](path)
}

func WriteReviews(path string, reviews []nhs.Review) error {
	return writeJson(path, reviews)
}

func ReadReviews(path string) ([]nhs.Review, error) {
	return readJson[nhs.Review](path)
}

func writeJson[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	if records == nil {
		records = []T{}
	}
	contents, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0644)
}

func readJson[T any](path string) ([]T, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []T
	err = json.Unmarshal(contents, &records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
