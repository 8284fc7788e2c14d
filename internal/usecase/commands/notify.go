package commands

import (
	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/pkg/errs"
)

var ErrUnknownOutcomeForNotification = errs.New("outcome code not eligible for notification")

// buildNotificationJob selects the notification kind strictly from the
// outcome code and assembles the rendering variables from its payload. The
// orchestrator only calls this for created-* codes; anything else is a
// contract violation and fails loudly.
func buildNotificationJob(res *outcome.Result, req booking.Request) (NotificationJob, error) {
	var kind NotificationKind
	switch res.Code {
	case outcome.CodeCreatedActive:
		kind = KindActiveConfirmation
	case outcome.CodeCreatedPending:
		kind = KindPendingWithConflict
	case outcome.CodeCreatedCanceled:
		kind = KindCancellation
	default:
		return NotificationJob{}, errs.Mark(
			errs.New("no notification kind for outcome "+res.Code.String()),
			ErrUnknownOutcomeForNotification,
		)
	}

	p := res.Payload

	vars := NotificationVars{
		FullName:        req.FullName(),
		ReservationCode: p.PublicCode,
		Date:            p.Date,
		Time:            p.Time,
		Seats:           p.Seats,
	}
	if p.Person != nil {
		vars.FullName = (booking.Request{Name: p.Person.Name, Surname: p.Person.Surname}).FullName()
	}
	if p.Performance != nil {
		vars.PerformanceTitle = p.Performance.Title
	}
	if kind == KindPendingWithConflict && p.Existing != nil {
		vars.ExistingCode = p.Existing.Code
		vars.ExistingDate = p.Existing.Date
		vars.ExistingTime = p.Existing.Time
		vars.ExistingSeats = p.Existing.Seats
	}

	recipient := req.Email
	if p.Person != nil && p.Person.Email != "" {
		recipient = p.Person.Email
	}

	return NotificationJob{
		Recipient: recipient,
		Kind:      kind,
		Vars:      vars,
	}, nil
}
