package nhs

// Weekdays is the canonical, ordered set of opening-times keys. Both the
// extractor (day-row validation) and the merge step (column explosion)
// iterate this list rather than repeating the literals.
var Weekdays = [7]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ListingRecord is one surgery entry on the directory results page. Optional
// string fields are "" when the page carried no value for them.
type ListingRecord struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	NhsUrl        string `json:"nhs_url"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	DistanceMiles string `json:"distance_miles"`
	IsInCatchment bool   `json:"is_in_catchment"`
}

// SurgeryDetail is the richer per-surgery record from the contact-details
// page. Id is attached by the pipeline from the listing that was followed,
// it is never parsed from the page itself. OpeningTimes holds only the days
// the page listed; a missing day means "no data", not "closed".
type SurgeryDetail struct {
	Id           string            `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Website      string            `json:"website"`
	OpeningTimes map[string]string `json:"opening_times"`
}

// Review is a single user review. Rating is nil when no "Rated N star"
// sentence could be parsed. Response is "" both when the page carried no
// response block and when the organisation has not yet replied.
type Review struct {
	Id       string `json:"id"`
	Rating   *int64 `json:"rating"`
	Title    string `json:"review_title"`
	Date     string `json:"review_date"`
	Content  string `json:"review_content"`
	Response string `json:"review_response"`
}
