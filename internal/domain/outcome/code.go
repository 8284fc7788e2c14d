package outcome

// Code is the closed vocabulary the transactional backend classifies a
// reservation attempt with. Backend responses outside this set are carried
// verbatim but classify as client errors.
type Code string

const (
	CodeCreatedActive           Code = "created-active"
	CodeCreatedPending          Code = "created-pending"
	CodeCreatedCanceled         Code = "created-canceled"
	CodeDuplicateSameDatetime   Code = "duplicate-same-datetime"
	CodePerformanceNotFound     Code = "performance-theater-not-found"
	CodeDatetimeNotFound        Code = "datetime-not-found"
	CodeMissingFields           Code = "missing-fields"
	CodeInvalidNumSeats         Code = "invalid-num-seats"
	CodeInvalidDateTimeFormat   Code = "invalid-date-time-format"
	CodeInvalidPhone            Code = "invalid-phone"
	CodeNoReservation           Code = "no-reservation"
	CodeNoPermission            Code = "no-permission"
)

var known = map[Code]struct{}{
	CodeCreatedActive:         {},
	CodeCreatedPending:        {},
	CodeCreatedCanceled:       {},
	CodeDuplicateSameDatetime: {},
	CodePerformanceNotFound:   {},
	CodeDatetimeNotFound:      {},
	CodeMissingFields:         {},
	CodeInvalidNumSeats:       {},
	CodeInvalidDateTimeFormat: {},
	CodeInvalidPhone:          {},
	CodeNoReservation:         {},
	CodeNoPermission:          {},
}

func (c Code) Known() bool {
	_, ok := known[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}

// Created reports whether the code represents a materialized reservation,
// i.e. one of the three codes that must trigger a notification.
func (c Code) Created() bool {
	switch c {
	case CodeCreatedActive, CodeCreatedPending, CodeCreatedCanceled:
		return true
	default:
		return false
	}
}
