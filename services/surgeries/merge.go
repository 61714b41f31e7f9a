package surgeries

import (
	"fmt"
	"strconv"

	"gpfinder-backend/lib/scrapers/nhs"

	"github.com/antzucaro/matchr"
)

// MergedRow is one denormalized output row: the listing fields, the detail
// fields that survive verification, the seven exploded opening-times columns
// and the review aggregates. Aggregate zeros are a "no data" sentinel, not a
// valid rating.
type MergedRow struct {
	Id            string
	Name          string
	NhsUrl        string
	Address       string
	PhoneNumber   string
	DistanceMiles string
	IsInCatchment bool
	Website       string
	// indexed in nhs.Weekdays order, "" where the source had no data
	OpeningTimes [7]string
	NumReviews   int64
	AvgRating    float64
	MinRating    int64
	MaxRating    int64
}

// MergedColumns is the output column order, shared by every writer.
func MergedColumns() []string {
	columns := []string{
		"id", "name", "nhs_url", "address", "phone_number",
		"distance_miles", "is_in_catchment", "website",
	}
	for _, day := range nhs.Weekdays {
		columns = append(columns, "opening_times_"+day)
	}
	return append(columns, "num_reviews", "avg_rating", "min_rating", "max_rating")
}

// Record renders the row in MergedColumns order.
func (r MergedRow) Record() []string {
	record := []string{
		r.Id, r.Name, r.NhsUrl, r.Address, r.PhoneNumber,
		r.DistanceMiles, strconv.FormatBool(r.IsInCatchment), r.Website,
	}
	record = append(record, r.OpeningTimes[:]...)
	return append(record,
		strconv.FormatInt(r.NumReviews, 10),
		strconv.FormatFloat(r.AvgRating, 'g', -1, 64),
		strconv.FormatInt(r.MinRating, 10),
		strconv.FormatInt(r.MaxRating, 10),
	)
}

// FlattenAndAddDetails inner-joins the listing and detail datasets on id and
// explodes each detail's opening times into the weekday columns. The join is
// structural: every listing must match exactly one detail record, and the
// name/address carried by both sources must agree, otherwise the datasets do
// not describe the same surgeries and the merge fails. Output rows follow the
// listing order.
func FlattenAndAddDetails(listings []nhs.ListingRecord, details []nhs.SurgeryDetail) ([]MergedRow, error) {
	detailsById := make(map[string][]nhs.SurgeryDetail, len(details))
	for _, d := range details {
		detailsById[d.Id] = append(detailsById[d.Id], d)
	}

	rows := make([]MergedRow, 0, len(listings))
	for _, listing := range listings {
		matches := detailsById[listing.Id]
		if len(matches) != 1 {
			return nil, fmt.Errorf(
				"expected exactly one detail record for surgery %q, got %d",
				listing.Id, len(matches),
			)
		}
		detail := matches[0]

		if detail.Name != listing.Name {
			return nil, disagreementError("name", listing.Id, listing.Name, detail.Name)
		}
		if detail.Address != listing.Address {
			return nil, disagreementError("address", listing.Id, listing.Address, detail.Address)
		}

		row := MergedRow{
			Id:            listing.Id,
			Name:          listing.Name,
			NhsUrl:        listing.NhsUrl,
			Address:       listing.Address,
			PhoneNumber:   listing.PhoneNumber,
			DistanceMiles: listing.DistanceMiles,
			IsInCatchment: listing.IsInCatchment,
			Website:       detail.Website,
		}
		for i, day := range nhs.Weekdays {
			row.OpeningTimes[i] = detail.OpeningTimes[day]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func disagreementError(field, id, listing, detail string) error {
	similarity := matchr.JaroWinkler(listing, detail, false)
	return fmt.Errorf(
		"surgery %q: %s disagrees between the listing and detail pages (%q vs %q, similarity %.2f)",
		id, field, listing, detail, similarity,
	)
}

type reviewAggregate struct {
	count   int64
	ratings []int64
}

// AddReviewMetrics left-joins per-surgery review aggregates onto the merged
// rows. Every review counts towards NumReviews, but nil ratings are excluded
// from avg/min/max. Surgeries with no reviews keep all four aggregates at
// zero. Row order is preserved, unaffected by the review ordering.
func AddReviewMetrics(rows []MergedRow, reviews []nhs.Review) []MergedRow {
	groups := make(map[string]*reviewAggregate)
	for _, review := range reviews {
		group := groups[review.Id]
		if group == nil {
			group = &reviewAggregate{}
			groups[review.Id] = group
		}
		group.count++
		if review.Rating != nil {
			group.ratings = append(group.ratings, *review.Rating)
		}
	}

	out := make([]MergedRow, len(rows))
	for i, row := range rows {
		if group := groups[row.Id]; group != nil {
			row.NumReviews = group.count
			if len(group.ratings) > 0 {
				var sum, min, max int64
				min = group.ratings[0]
				max = group.ratings[0]
				for _, rating := range group.ratings {
					sum += rating
					if rating < min {
						min = rating
					}
					if rating > max {
						max = rating
					}
				}
				row.AvgRating = float64(sum) / float64(len(group.ratings))
				row.MinRating = min
				row.MaxRating = max
			}
		}
		out[i] = row
	}
	return out
}
