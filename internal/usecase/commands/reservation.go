package commands

import (
	"context"
	"log/slog"
	"net/mail"
	"sort"
	"strings"

	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/domain/risk"
	"reservation-gateway/internal/pkg/clock"
	"reservation-gateway/internal/pkg/errs"
	"reservation-gateway/internal/pkg/phone"
)

const maxNameLength = 100

var ErrBackendFailure = errs.New("backend call failed")

// ValidationError enumerates the failing input fields. It terminates the
// request before any verification or backend call happens.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// ReserveInput is the inbound request before canonicalization.
type ReserveInput struct {
	Name         string
	Surname      string
	Email        string
	Phone        string
	ProductionID string
	TheaterID    string
	Date         string
	Time         string
	Seats        string

	RiskToken  string
	RiskAction string
	RemoteIP   string

	ReferralSource string
	Referer        string
	ReservedBy     string

	// SkipVerification is set by the staff route, where the caller is
	// already authenticated.
	SkipVerification bool
}

// ReserveResult is either a soft risk rejection or a classified backend
// outcome, never both.
type ReserveResult struct {
	RiskRejected bool
	Risk         risk.Verification
	Outcome      *outcome.Result
	Class        outcome.StatusClass
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type reservationCommandsImpl struct {
	backend      BackendGateway
	verifier     RiskVerifier
	dispatcher   NotificationDispatcher
	normalizer   *phone.Normalizer
	requireToken bool
	clock        clock.Clock
}

func NewReservationCommands(
	backend BackendGateway,
	verifier RiskVerifier,
	dispatcher NotificationDispatcher,
	normalizer *phone.Normalizer,
	requireToken bool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		backend:      backend,
		verifier:     verifier,
		dispatcher:   dispatcher,
		normalizer:   normalizer,
		requireToken: requireToken,
		clock:        clock,
	}
}

// Reserve runs one request through the pipeline: validate, verify (when a
// token was supplied), delegate to the backend, classify, notify. Nothing
// mutates before validation and verification both pass, and the backend is
// called at most once.
func (u *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	started := u.clock.Now()

	req, err := u.canonicalize(in)
	if err != nil {
		return nil, err
	}

	if verification, rejected := u.verifyIfNeeded(ctx, in); rejected {
		slog.Info("reservation blocked by risk check",
			"reasons", verification.Reasons,
			"email", in.Email,
		)
		return &ReserveResult{RiskRejected: true, Risk: verification}, nil
	}

	res, err := u.backend.Reserve(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, ErrBackendFailure)
	}

	result := &ReserveResult{
		Outcome: res,
		Class:   outcome.Classify(res.Code),
	}

	u.notify(ctx, res, req)

	slog.Info("reservation pipeline finished",
		"outcome", res.Code.String(),
		"class", string(result.Class),
		"duration", u.clock.Now().Sub(started),
	)
	return result, nil
}

// canonicalize validates identity fields and normalizes the phone number.
// All failing fields are reported together.
func (u *reservationCommandsImpl) canonicalize(in ReserveInput) (booking.Request, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(in.Name)
	surname := strings.TrimSpace(in.Surname)
	if name == "" {
		fields["name"] = "must not be empty"
	} else if len(name) > maxNameLength {
		fields["name"] = "too long"
	}
	if surname == "" {
		fields["surname"] = "must not be empty"
	} else if len(surname) > maxNameLength {
		fields["surname"] = "too long"
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "not a valid email address"
	}

	normalized, err := u.normalizer.Normalize(in.Phone)
	if err != nil {
		fields["phone"] = "not a valid phone number"
	}

	if len(fields) > 0 {
		return booking.Request{}, &ValidationError{Fields: fields}
	}

	return booking.Request{
		Name:         name,
		Surname:      surname,
		Email:        in.Email,
		Phone:        normalized,
		ProductionID: in.ProductionID,
		TheaterID:    in.TheaterID,
		Date:         in.Date,
		Time:         in.Time,
		Seats:        in.Seats,
		Provenance: booking.Provenance{
			ReferralSource: in.ReferralSource,
			Referer:        in.Referer,
			ReservedBy:     in.ReservedBy,
		},
	}, nil
}

// verifyIfNeeded runs the risk check for requests that carry a token.
// Verification is opportunistic: an absent token skips the check unless the
// deployment requires one.
func (u *reservationCommandsImpl) verifyIfNeeded(ctx context.Context, in ReserveInput) (risk.Verification, bool) {
	if in.SkipVerification {
		return risk.Verification{}, false
	}
	if in.RiskToken == "" && !u.requireToken {
		return risk.Verification{}, false
	}

	verification := u.verifier.Verify(ctx, in.RiskToken, in.RemoteIP, in.RiskAction)
	if verification.Accepted {
		return verification, false
	}
	return verification, true
}

// notify dispatches at most one message, only for created-* outcomes. The
// dispatch is awaited so failures land in the logs, but the response computed
// from the outcome code is final by this point and stays untouched.
func (u *reservationCommandsImpl) notify(ctx context.Context, res *outcome.Result, req booking.Request) {
	if !res.Code.Created() {
		return
	}

	job, err := buildNotificationJob(res, req)
	if err != nil {
		slog.Error("failed to build notification job", "outcome", res.Code.String(), "error", err)
		return
	}

	if err := u.dispatcher.Dispatch(ctx, job); err != nil {
		slog.Error("notification dispatch failed",
			"kind", string(job.Kind),
			"recipient", job.Recipient,
			"error", err,
		)
	}
}
