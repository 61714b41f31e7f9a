package nhs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const detailPage = `
<html><body>
<h2 class="nhsuk-caption-xl">Ruston Street Clinic</h2>
<address id="address_panel_address">
  2 Ruston Street<br>
  London<br>
  E3 2LR
</address>
<a id="contact_info_panel_website_link" href="https://www.rustonstreetclinic.nhs.uk">Visit website</a>
<table id="table_0">
  <tbody>
    <tr><th>Monday</th><td>8am to 6.30pm</td></tr>
    <tr><th>Tuesday</th><td>
      8am   to
      1pm
    </td></tr>
    <tr><th>Bank holidays</th><td>Closed</td></tr>
  </tbody>
</table>
</body></html>
`

func TestParseDetail(t *testing.T) {
	detail, err := ParseDetail([]byte(detailPage))
	require.NoError(t, err)

	expect := SurgeryDetail{
		Name:    "Ruston Street Clinic",
		Address: "2 Ruston Street, London, E3 2LR",
		Website: "https://www.rustonstreetclinic.nhs.uk",
		OpeningTimes: map[string]string{
			"monday":  "8am to 6.30pm",
			"tuesday": "8am to 1pm",
		},
	}
	if diff := cmp.Diff(expect, detail); diff != "" {
		t.Fatalf("unexpected detail record (-want +got):\n%s", diff)
	}
}

func TestParseDetailMissingOpeningTimes(t *testing.T) {
	detail, err := ParseDetail([]byte(`
		<html><body>
		<h2 class="nhsuk-caption-xl">Ruston Street Clinic</h2>
		</body></html>
	`))
	require.NoError(t, err)
	require.Equal(t, "Ruston Street Clinic", detail.Name)
	require.Empty(t, detail.OpeningTimes)
}

func TestParseDetailEmptyPage(t *testing.T) {
	detail, err := ParseDetail([]byte(`<html><body></body></html>`))
	require.NoError(t, err)
	require.Equal(t, SurgeryDetail{OpeningTimes: map[string]string{}}, detail)
}
