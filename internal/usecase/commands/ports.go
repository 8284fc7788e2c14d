package commands

//go:generate mockgen -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock reservation-gateway/internal/usecase/commands BackendGateway,RiskVerifier,NotificationDispatcher,ReservationCommands

import (
	"context"

	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/domain/risk"
)

// BackendGateway is the single mutation point of the pipeline. One call per
// orchestrated request, no retry, no compensating action on failure.
type BackendGateway interface {
	Reserve(ctx context.Context, req booking.Request) (*outcome.Result, error)
}

// RiskVerifier scores a client-supplied token. The implementation owns the
// time budget; a rejection is a value, never an error.
type RiskVerifier interface {
	Verify(ctx context.Context, token, remoteIP, action string) risk.Verification
}

// NotificationDispatcher delivers exactly one message per job. Dispatch is
// awaited but its failure never alters the caller-facing response.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, job NotificationJob) error
}

type NotificationKind string

const (
	KindActiveConfirmation  NotificationKind = "active-confirmation"
	KindPendingWithConflict NotificationKind = "pending-with-conflict"
	KindCancellation        NotificationKind = "cancellation"
)

// NotificationVars are the rendering variables drawn from an outcome payload.
// The Existing* fields are populated for pending-with-conflict only and
// default to empty when the backend omitted them.
type NotificationVars struct {
	FullName         string
	PerformanceTitle string
	ReservationCode  string
	Date             string
	Time             string
	Seats            string
	ExistingCode     string
	ExistingDate     string
	ExistingTime     string
	ExistingSeats    string
}

// NotificationJob is one kind-tagged message to one recipient.
type NotificationJob struct {
	Recipient string
	Kind      NotificationKind
	Vars      NotificationVars
}
