package booking

// Request is the canonical reservation request handed to the transactional
// backend. Phone is always in E.164 form by the time a Request exists; the
// seat count and identifiers stay opaque strings because range and numeric
// validity belong to the backend, not this layer.
type Request struct {
	Name         string
	Surname      string
	Email        string
	Phone        string
	ProductionID string
	TheaterID    string
	Date         string
	Time         string
	Seats        string
	Provenance   Provenance
}

// Provenance records where a request came from. All fields are optional.
type Provenance struct {
	ReferralSource string
	Referer        string
	ReservedBy     string
}

func (r Request) FullName() string {
	if r.Surname == "" {
		return r.Name
	}
	return r.Name + " " + r.Surname
}
