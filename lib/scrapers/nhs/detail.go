package nhs

import (
	"bytes"
	"strings"

	"gpfinder-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// ParseDetail extracts the contact-details page of a single surgery. Every
// field rule tolerates its element being absent; a page with no opening-times
// table yields an empty OpeningTimes map, not an error.
func ParseDetail(body []byte) (SurgeryDetail, error) {
	detail := SurgeryDetail{OpeningTimes: map[string]string{}}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return detail, err
	}

	if name, ok := htmlutil.First(doc.Selection, "h2.nhsuk-caption-xl"); ok {
		detail.Name = htmlutil.Collapse(name.Text())
	}

	if address, ok := htmlutil.First(doc.Selection, "address#address_panel_address"); ok {
		detail.Address = strings.Join(htmlutil.Segments(address), ", ")
	}

	if website, ok := htmlutil.First(doc.Selection, "a#contact_info_panel_website_link"); ok {
		detail.Website = website.AttrOr("href", "")
	}

	if table, ok := htmlutil.First(doc.Selection, "table#table_0"); ok {
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			dayCell, ok := htmlutil.First(row, "th")
			if !ok {
				return
			}
			timeCell, ok := htmlutil.First(row, "td")
			if !ok {
				return
			}

			day := strings.ToLower(htmlutil.Collapse(dayCell.Text()))
			if !IsWeekday(day) {
				return
			}
			detail.OpeningTimes[day] = strings.Join(htmlutil.Segments(timeCell), " ")
		})
	}

	return detail, nil
}
