package nhs

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gpfinder-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	ratedStarsRegex  = regexp.MustCompile(`Rated (\d+) star`)
	reviewTitleRegex = regexp.MustCompile(`^Review titled\s*`)
	postedByRegex    = regexp.MustCompile(`by .* - Posted on`)
	postedDateRegex  = regexp.MustCompile(`Posted on (\d{1,2} \w+ \d{4})`)
	notRepliedRegex  = regexp.MustCompile(`(?i)has not yet replied\.$`)
)

// ParseReviews extracts every review from a surgery's ratings-and-reviews
// page. Field rules never abort one another: a review with an unparseable
// rating still keeps its title, date and content.
func ParseReviews(body []byte) ([]Review, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	list, ok := htmlutil.First(doc.Selection, "ol.nhsuk-list")
	if !ok {
		return nil, fmt.Errorf("review list not found")
	}

	var reviews []Review
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		reviews = append(reviews, parseReview(item))
	})

	return reviews, nil
}

func parseReview(item *goquery.Selection) Review {
	var review Review

	if rating, ok := htmlutil.First(item, `p[id^='star-rating-']`); ok {
		if m := ratedStarsRegex.FindStringSubmatch(rating.Text()); m != nil {
			value, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				review.Rating = &value
			}
		}
	}

	if title, ok := htmlutil.First(item, "h3.nhsuk-body-l"); ok {
		text := strings.TrimSpace(title.Text())
		review.Title = strings.TrimSpace(reviewTitleRegex.ReplaceAllString(text, ""))
	}

	review.Date = parsePostedDate(item)

	if content, ok := htmlutil.First(item, "p.comment-text"); ok {
		review.Content = strings.TrimSpace(content.Text())
	}

	if response, ok := htmlutil.First(item, `div[aria-label='Organisation review response']`); ok {
		text := strings.TrimSpace(response.Text())
		// "X has not yet replied." is a placeholder, not response content
		if !notRepliedRegex.MatchString(text) {
			review.Response = text
		}
	}

	return review
}

// parsePostedDate finds the "by <author> - Posted on <date>" paragraph and
// re-renders the date as dd/mm/yyyy. Any parse failure yields "".
func parsePostedDate(item *goquery.Selection) string {
	date := ""
	item.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := p.Text()
		if !postedByRegex.MatchString(text) {
			return true
		}

		m := postedDateRegex.FindStringSubmatch(text)
		if m == nil {
			return false
		}
		parsed, err := time.Parse("2 January 2006", m[1])
		if err != nil {
			return false
		}

		date = parsed.Format("02/01/2006")
		return false
	})
	return date
}
