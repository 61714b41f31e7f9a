package nhs

import (
	"bytes"
	"fmt"
	"strings"

	"gpfinder-backend/lib/htmlutil"
	"gpfinder-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// screen-reader-only phrases rendered ahead of the visible value in several
// listing fields
var hiddenPrefixes = []string{
	"navigates to more detail for",
	"Address for this organisation is",
	"Phone number for this organisation is",
	"This organisation is",
}

// ParseListing extracts every surgery entry from a directory results page.
// The page carries two ordered lists, surgeries inside the postcode's
// catchment and surgeries outside it. Entries missing a name or an NHS url
// cannot be followed further and are dropped.
func ParseListing(body []byte) ([]ListingRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	lists := []struct {
		selector      string
		isInCatchment bool
	}{
		{"ol#catchment_gps_list", true},
		{"ol#non_catchment_gps_list", false},
	}

	var records []ListingRecord
	for _, l := range lists {
		list, ok := htmlutil.First(doc.Selection, l.selector)
		if !ok {
			return nil, fmt.Errorf("results list %s not found", l.selector)
		}
		list.Find("li.results__item").Each(func(_ int, item *goquery.Selection) {
			record := parseListingItem(item)
			record.IsInCatchment = l.isInCatchment
			if record.Name != "" && record.NhsUrl != "" {
				records = append(records, record)
			}
		})
	}

	return records, nil
}

func parseListingItem(item *goquery.Selection) ListingRecord {
	var record ListingRecord

	if id, ok := htmlutil.First(item, `p[id*='item_id_']`); ok {
		record.Id = htmlutil.Collapse(id.Text())
	}

	if name, ok := htmlutil.First(item, "h2.results__name"); ok {
		if link, ok := htmlutil.First(name, "a.nhsapp-open-in-webview"); ok {
			record.Name = textutil.FirstVisible(htmlutil.Segments(link), hiddenPrefixes)
			record.NhsUrl = link.AttrOr("href", "")
		}
	}

	if address, ok := htmlutil.First(item, `p[id*='address_']`); ok {
		record.Address = textutil.FirstVisible(htmlutil.Segments(address), hiddenPrefixes)
	}

	if phone, ok := htmlutil.First(item, `p[id*='phone_']`); ok {
		record.PhoneNumber = textutil.FirstVisible(htmlutil.Segments(phone), hiddenPrefixes)
	}

	if distance, ok := htmlutil.First(item, `p[id*='distance_']`); ok {
		text := textutil.FirstVisible(htmlutil.Segments(distance), hiddenPrefixes)
		// "0.4 miles away" -> "0.4", anything else leaves the field absent
		if strings.Contains(text, "miles away") {
			record.DistanceMiles = strings.TrimSpace(strings.ReplaceAll(text, "miles away", ""))
		}
	}

	return record
}
