package response

import (
	"log/slog"
	"net/http"

	"github.com/jinzhu/copier"

	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/usecase/commands"
)

// envelope codes for terminal states this layer decides itself
const (
	CodeRiskCheckFailed  = "risk-check-failed"
	CodeValidationFailed = "validation-failed"
	CodeInvalidRequest   = "invalid-request"
	CodeServerError      = "server-error"
)

// ReservationEnvelope is the single response shape of the reservation
// routes: always a success flag and a code, plus whichever of the optional
// sections the code calls for.
type ReservationEnvelope struct {
	Success     bool              `json:"success"`
	Code        string            `json:"code"`
	Info        string            `json:"info,omitempty"`
	Reservation *ReservationView  `json:"reservation,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	RiskReasons []string          `json:"riskReasons,omitempty"`
	Score       *float64          `json:"score,omitempty"`
}

type ReservationView struct {
	ReservationID string           `json:"reservationId,omitempty"`
	PublicCode    string           `json:"publicCode,omitempty"`
	Date          string           `json:"date,omitempty"`
	Time          string           `json:"time,omitempty"`
	Seats         string           `json:"seats,omitempty"`
	Existing      *ReservationView `json:"existing,omitempty"`
}

var infoByCode = map[outcome.Code]string{
	outcome.CodeCreatedActive:         "Reservation confirmed",
	outcome.CodeCreatedPending:        "Reservation pending review",
	outcome.CodeCreatedCanceled:       "Reservation canceled",
	outcome.CodeDuplicateSameDatetime: "A reservation already exists for this date and time",
	outcome.CodePerformanceNotFound:   "Performance or theater not found",
	outcome.CodeDatetimeNotFound:      "No performance at this date and time",
	outcome.CodeMissingFields:         "Required fields are missing",
	outcome.CodeInvalidNumSeats:       "Invalid seat count",
	outcome.CodeInvalidDateTimeFormat: "Invalid date or time format",
	outcome.CodeInvalidPhone:          "Invalid phone number",
	outcome.CodeNoReservation:         "No reservation found",
	outcome.CodeNoPermission:          "Not allowed",
}

// FromResult maps an orchestration result to the HTTP status and envelope.
func FromResult(result *commands.ReserveResult) (int, ReservationEnvelope) {
	if result.RiskRejected {
		// soft-accepted so a human reviewer can see why the request was
		// blocked; this is not a transport error
		return http.StatusOK, ReservationEnvelope{
			Success:     false,
			Code:        CodeRiskCheckFailed,
			RiskReasons: result.Risk.Reasons,
			Score:       result.Risk.Score,
		}
	}

	env := ReservationEnvelope{
		Success: result.Class == outcome.ClassSuccess,
		Code:    result.Outcome.Code.String(),
		Info:    infoByCode[result.Outcome.Code],
	}
	if env.Success {
		env.Reservation = viewFromPayload(result.Outcome.Payload)
	}
	return result.Class.HTTPStatus(), env
}

func viewFromPayload(p outcome.Payload) *ReservationView {
	var view ReservationView
	// field names line up except for the snapshot; copier handles the rest
	if err := copier.Copy(&view, &p); err != nil {
		slog.Warn("failed to map reservation payload", "error", err)
	}
	if p.Existing != nil {
		view.Existing = &ReservationView{
			PublicCode: p.Existing.Code,
			Date:       p.Existing.Date,
			Time:       p.Existing.Time,
			Seats:      p.Existing.Seats,
		}
	}
	return &view
}
