package nhs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<ol id="catchment_gps_list">
  <li class="results__item">
    <p class="nhsuk-u-visually-hidden" id="item_id_0">F84030</p>
    <h2 class="results__name">
      <a class="nhsapp-open-in-webview" href="https://www.nhs.uk/services/gp-surgery/ruston-street-clinic/F84030">
        <span class="nhsuk-u-visually-hidden">navigates to more detail for Ruston Street Clinic</span>
        Ruston Street Clinic
      </a>
    </h2>
    <p id="address_0">
      <span class="nhsuk-u-visually-hidden">Address for this organisation is</span>
      2 Ruston Street, London, E3 2LR
    </p>
    <p id="phone_0">
      <span class="nhsuk-u-visually-hidden">Phone number for this organisation is</span>
      020 8980 1652
    </p>
    <p id="distance_0">
      <span class="nhsuk-u-visually-hidden">This organisation is</span>
      0.4 miles away
    </p>
  </li>
  <li class="results__item">
    <p class="nhsuk-u-visually-hidden" id="item_id_1">F84999</p>
    <h2 class="results__name">no link here, record gets dropped</h2>
  </li>
</ol>
<ol id="non_catchment_gps_list">
  <li class="results__item">
    <p class="nhsuk-u-visually-hidden" id="item_id_2">F84621</p>
    <h2 class="results__name">
      <a class="nhsapp-open-in-webview" href="https://www.nhs.uk/services/gp-surgery/st-pauls-way-medical-centre/F84621">
        <span class="nhsuk-u-visually-hidden">navigates to more detail for St Pauls Way Medical Centre</span>
        St Pauls Way Medical Centre
      </a>
    </h2>
    <p id="distance_2">
      <span class="nhsuk-u-visually-hidden">This organisation is</span>
      unknown
    </p>
  </li>
</ol>
</body></html>
`

func TestParseListing(t *testing.T) {
	records, err := ParseListing([]byte(listingPage))
	require.NoError(t, err)

	expect := []ListingRecord{
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
			IsInCatchment: false,
		},
	}
	if diff := cmp.Diff(expect, records); diff != "" {
		t.Fatalf("unexpected listing records (-want +got):\n%s", diff)
	}
}

func TestParseListingMissingResultsList(t *testing.T) {
	_, err := ParseListing([]byte(`<html><body><p>service unavailable</p></body></html>`))
	require.Error(t, err)
}

func TestDistanceWithoutSuffixIsAbsent(t *testing.T) {
	records, err := ParseListing([]byte(listingPage))
	require.NoError(t, err)
	require.Equal(t, "", records[1].DistanceMiles)
}
