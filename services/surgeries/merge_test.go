package surgeries

import (
	"testing"

	"gpfinder-backend/lib/scrapers/nhs"

	"github.com/stretchr/testify/require"
)

func rating(n int64) *int64 {
	return &n
}

func testListings() []nhs.ListingRecord {
	return []nhs.ListingRecord{
		{
			Id:            "F84030",
			Name:          "Ruston Street Clinic",
			NhsUrl:        "https://www.nhs.uk/services/gp-surgery/ruston-street-clinic/F84030",
			Address:       "2 Ruston Street, London, E3 2LR",
			PhoneNumber:   "020 8980 1652",
			DistanceMiles: "0.4",
			IsInCatchment: true,
		},
		{
			Id:            "F84621",
			Name:          "St Pauls Way Medical Centre",
			NhsUrl:        "https://www.nhs.uk/services/gp-surgery/st-pauls-way-medical-centre/F84621",
			Address:       "99 St Pauls Way, London, E3 4AJ",
			IsInCatchment: false,
		},
	}
}

func testDetails() []nhs.SurgeryDetail {
	return []nhs.SurgeryDetail{
		{
			Id:      "F84030",
			Name:    "Ruston Street Clinic",
			Address: "2 Ruston Street, London, E3 2LR",
			Website: "https://www.rustonstreetclinic.nhs.uk",
			OpeningTimes: map[string]string{
				"monday": "08:00-18:00",
			},
		},
		{
			Id:           "F84621",
			Name:         "St Pauls Way Medical Centre",
			Address:      "99 St Pauls Way, London, E3 4AJ",
			OpeningTimes: map[string]string{},
		},
	}
}

func TestFlattenAndAddDetails(t *testing.T) {
	rows, err := FlattenAndAddDetails(testListings(), testDetails())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	require.Equal(t, "F84030", first.Id)
	require.Equal(t, "Ruston Street Clinic", first.Name)
	require.Equal(t, "https://www.rustonstreetclinic.nhs.uk", first.Website)

	// monday populated, the other six day columns stay absent
	require.Equal(t, "08:00-18:00", first.OpeningTimes[0])
	for _, hours := range first.OpeningTimes[1:] {
		require.Equal(t, "", hours)
	}

	// output order follows the listing order
	require.Equal(t, "F84621", rows[1].Id)
}

func TestFlattenAndAddDetailsMissingDetail(t *testing.T) {
	_, err := FlattenAndAddDetails(testListings(), testDetails()[:1])
	require.Error(t, err)
}

func TestFlattenAndAddDetailsDuplicateDetail(t *testing.T) {
	details := testDetails()
	details = append(details, details[0])
	_, err := FlattenAndAddDetails(testListings(), details)
	require.Error(t, err)
}

func TestFlattenAndAddDetailsNameDisagreement(t *testing.T) {
	details := testDetails()
	details[0].Name = "Ruston St Clinic"
	_, err := FlattenAndAddDetails(testListings(), details)
	require.Error(t, err)
	require.Contains(t, err.Error(), "name disagrees")
}

func TestFlattenAndAddDetailsAddressDisagreement(t *testing.T) {
	details := testDetails()
	details[1].Address = "100 St Pauls Way, London, E3 4AJ"
	_, err := FlattenAndAddDetails(testListings(), details)
	require.Error(t, err)
	require.Contains(t, err.Error(), "address disagrees")
}

func TestAddReviewMetrics(t *testing.T) {
	rows, err := FlattenAndAddDetails(testListings(), testDetails())
	require.NoError(t, err)

	reviews := []nhs.Review{
		{Id: "F84030", Rating: rating(5)},
		{Id: "F84030", Rating: rating(3)},
		{Id: "F84030", Rating: rating(4)},
	}
	out := AddReviewMetrics(rows, reviews)
	require.Len(t, out, 2)

	first := out[0]
	require.EqualValues(t, 3, first.NumReviews)
	require.Equal(t, 4.0, first.AvgRating)
	require.EqualValues(t, 3, first.MinRating)
	require.EqualValues(t, 5, first.MaxRating)

	// zero is the "no reviews" sentinel
	second := out[1]
	require.EqualValues(t, 0, second.NumReviews)
	require.Equal(t, 0.0, second.AvgRating)
	require.EqualValues(t, 0, second.MinRating)
	require.EqualValues(t, 0, second.MaxRating)
}

func TestAddReviewMetricsNilRatingsExcludedFromAggregates(t *testing.T) {
	rows, err := FlattenAndAddDetails(testListings(), testDetails())
	require.NoError(t, err)

	reviews := []nhs.Review{
		{Id: "F84621", Rating: rating(2)},
		{Id: "F84621", Rating: nil},
	}
	out := AddReviewMetrics(rows, reviews)

	second := out[1]
	require.EqualValues(t, 2, second.NumReviews)
	require.Equal(t, 2.0, second.AvgRating)
	require.EqualValues(t, 2, second.MinRating)
	require.EqualValues(t, 2, second.MaxRating)
}

func TestAddReviewMetricsOrderUnaffectedByReviews(t *testing.T) {
	rows, err := FlattenAndAddDetails(testListings(), testDetails())
	require.NoError(t, err)

	// reviews for the second row first
	reviews := []nhs.Review{
		{Id: "F84621", Rating: rating(1)},
		{Id: "F84030", Rating: rating(5)},
	}
	out := AddReviewMetrics(rows, reviews)
	require.Equal(t, "F84030", out[0].Id)
	require.Equal(t, "F84621", out[1].Id)
}
