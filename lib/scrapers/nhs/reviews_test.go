package nhs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const reviewsPage = `
<html><body>
<ol class="nhsuk-list">
  <li>
    <h3 class="nhsuk-body-l">Review titled Excellent care</h3>
    <p id="star-rating-101">Rated 4 stars out of 5</p>
    <p>by Anonymous - Posted on 3 January 2024</p>
    <p class="comment-text">Friendly staff and quick appointments.</p>
    <div aria-label="Organisation review response">Ruston Street Clinic has not yet replied.</div>
  </li>
  <li>
    <h3 class="nhsuk-body-l">Review titled Long waits</h3>
    <p id="star-rating-102">Rated 2 stars out of 5</p>
    <p>by A patient - Posted on 15 February 2024</p>
    <p class="comment-text">Waited three weeks for an appointment.</p>
    <div aria-label="Organisation review response">Thank you for your feedback, we are hiring more staff.</div>
  </li>
  <li>
    <h3 class="nhsuk-body-l">No marker on this title</h3>
    <p id="star-rating-103">No stars mentioned here</p>
    <p>by Someone - Posted on sometime last year</p>
  </li>
</ol>
</body></html>
`

func TestParseReviews(t *testing.T) {
	reviews, err := ParseReviews([]byte(reviewsPage))
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	first := reviews[0]
	require.NotNil(t, first.Rating)
	require.EqualValues(t, 4, *first.Rating)
	require.Equal(t, "Excellent care", first.Title)
	require.Equal(t, "03/01/2024", first.Date)
	require.Equal(t, "Friendly staff and quick appointments.", first.Content)
	// "has not yet replied" is a placeholder, not a response
	require.Equal(t, "", first.Response)

	second := reviews[1]
	require.NotNil(t, second.Rating)
	require.EqualValues(t, 2, *second.Rating)
	require.Equal(t, "15/02/2024", second.Date)
	require.Equal(t, "Thank you for your feedback, we are hiring more staff.", second.Response)

	third := reviews[2]
	require.Nil(t, third.Rating)
	require.Equal(t, "No marker on this title", third.Title)
	require.Equal(t, "", third.Date)
	require.Equal(t, "", third.Content)
	require.Equal(t, "", third.Response)
}

func TestParseReviewsMissingList(t *testing.T) {
	_, err := ParseReviews([]byte(`<html><body></body></html>`))
	require.Error(t, err)
}
