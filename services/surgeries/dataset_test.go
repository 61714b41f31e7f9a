package surgeries

import (
	"path/filepath"
	"testing"

	"gpfinder-backend/lib/scrapers/nhs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestListingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	listings := testListings()

	path := ListingsPath(dir, "E32LR")
	require.Equal(t, filepath.Join(dir, "E32LR_gp_surgeries.csv"), path)

	require.NoError(t, WriteListings(path, listings))
	read, err := ReadListings(path)
	require.NoError(t, err)

	if diff := cmp.Diff(listings, read); diff != "" {
		t.Fatalf("listings changed across the csv round trip (-want +got):\n%s", diff)
	}
}

func TestReviewsRoundTripKeepsNullRatings(t *testing.T) {
	dir := t.TempDir()
	reviews := []nhs.Review{
		{Id: "F84030", Rating: rating(4), Title: "Excellent care", Date: "03/01/2024"},
		{Id: "F84030", Rating: nil},
	}

	path := ReviewsPath(dir, "E32LR")
	require.NoError(t, WriteReviews(path, reviews))
	read, err := ReadReviews(path)
	require.NoError(t, err)

	require.Len(t, read, 2)
	require.NotNil(t, read[0].Rating)
	require.Nil(t, read[1].Rating)
}
