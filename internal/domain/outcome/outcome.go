package outcome

// PersonSnapshot echoes the requesting person as the backend recorded them.
type PersonSnapshot struct {
	Name    string
	Surname string
	Email   string
	Phone   string
}

// PerformanceSnapshot identifies the performance the outcome refers to.
type PerformanceSnapshot struct {
	ProductionID string
	TheaterID    string
	Title        string
}

// ReservationSnapshot is the conflicting existing reservation the backend
// reports alongside created-pending.
type ReservationSnapshot struct {
	Code  string
	Date  string
	Time  string
	Seats string
}

// Payload carries the outcome-specific data. Fields absent from the backend
// response stay zero-valued; only created-pending carries Existing.
type Payload struct {
	ReservationID string
	PublicCode    string
	Date          string
	Time          string
	Seats         string
	Person        *PersonSnapshot
	Performance   *PerformanceSnapshot
	Existing      *ReservationSnapshot
}

// Result is the immutable outcome of a single backend call. Produced once,
// consumed immediately, never persisted by this layer.
type Result struct {
	Code    Code
	Payload Payload
}
