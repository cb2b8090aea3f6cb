package domain

type Kind string

const (
	KindOfficial    Kind = "official"
	KindSpeculative Kind = "speculative"
)

// Posting is a candidate opportunity from the catalogue.
// Deadline is a date string (YYYY-MM-DD); speculative postings leave it empty.
type Posting struct {
	Title           string `json:"title" yaml:"title"`
	Company         string `json:"company" yaml:"company"`
	Location        string `json:"location" yaml:"location"`
	CommuteEstimate string `json:"commute_estimate" yaml:"commute"`
	Link            string `json:"link" yaml:"link"`
	Deadline        string `json:"deadline,omitempty" yaml:"deadline"`
	Kind            Kind   `json:"kind" yaml:"kind"`
	LeadHint        string `json:"lead_hint,omitempty" yaml:"lead_hint"`
}

// Lead is a speculative outreach target: a company without an advertised role.
type Lead struct {
	Company         string `json:"company" yaml:"company"`
	Hint            string `json:"lead_hint" yaml:"lead_hint"`
	Title           string `json:"title,omitempty" yaml:"title"`
	Location        string `json:"location,omitempty" yaml:"location"`
	CommuteEstimate string `json:"commute_estimate,omitempty" yaml:"commute"`
	Link            string `json:"link,omitempty" yaml:"link"`
}

// Posting renders the lead as a speculative posting.
func (l Lead) Posting() Posting {
	return Posting{
		Title:           l.Title,
		Company:         l.Company,
		Location:        l.Location,
		CommuteEstimate: l.CommuteEstimate,
		Link:            l.Link,
		Kind:            KindSpeculative,
		LeadHint:        l.Hint,
	}
}
