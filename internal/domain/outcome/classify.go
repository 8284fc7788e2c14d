package outcome

import "net/http"

// StatusClass buckets outcome codes into HTTP-style response classes.
type StatusClass string

const (
	ClassSuccess     StatusClass = "success"
	ClassConflict    StatusClass = "conflict"
	ClassNotFound    StatusClass = "not-found"
	ClassClientError StatusClass = "client-error"
	ClassForbidden   StatusClass = "forbidden"
)

// Classify maps an outcome code to its status class. The mapping is total:
// every recognized code has an explicit arm and anything unrecognized lands
// on client-error, never on success.
func Classify(c Code) StatusClass {
	switch c {
	case CodeCreatedActive, CodeCreatedPending, CodeCreatedCanceled:
		return ClassSuccess
	case CodeDuplicateSameDatetime:
		return ClassConflict
	case CodePerformanceNotFound, CodeDatetimeNotFound, CodeNoReservation:
		return ClassNotFound
	case CodeNoPermission:
		return ClassForbidden
	case CodeMissingFields, CodeInvalidNumSeats, CodeInvalidDateTimeFormat, CodeInvalidPhone:
		return ClassClientError
	default:
		return ClassClientError
	}
}

func (s StatusClass) HTTPStatus() int {
	switch s {
	case ClassSuccess:
		return http.StatusOK
	case ClassConflict:
		return http.StatusConflict
	case ClassNotFound:
		return http.StatusNotFound
	case ClassForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
