//go:build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
)

func baseRequest() booking.Request {
	return booking.Request{
		Name:    "Anna",
		Surname: "Papadopoulou",
		Email:   "anna@example.com",
	}
}

func TestBuildNotificationJobKinds(t *testing.T) {
	tests := []struct {
		code outcome.Code
		want NotificationKind
	}{
		{outcome.CodeCreatedActive, KindActiveConfirmation},
		{outcome.CodeCreatedPending, KindPendingWithConflict},
		{outcome.CodeCreatedCanceled, KindCancellation},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			job, err := buildNotificationJob(&outcome.Result{Code: tt.code}, baseRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.want, job.Kind)
			assert.Equal(t, "anna@example.com", job.Recipient)
		})
	}
}

func TestBuildNotificationJobRejectsIneligibleCodes(t *testing.T) {
	for _, code := range []outcome.Code{
		outcome.CodeDuplicateSameDatetime,
		outcome.CodeMissingFields,
		outcome.Code("totally-unknown"),
	} {
		_, err := buildNotificationJob(&outcome.Result{Code: code}, baseRequest())
		assert.ErrorIs(t, err, ErrUnknownOutcomeForNotification, "code %s", code)
	}
}

func TestBuildNotificationJobPrefersBackendSnapshots(t *testing.T) {
	res := &outcome.Result{
		Code: outcome.CodeCreatedActive,
		Payload: outcome.Payload{
			PublicCode: "QWE987",
			Date:       "2026-09-12",
			Time:       "21:00",
			Seats:      "2",
			Person: &outcome.PersonSnapshot{
				Name: "Maria", Surname: "Ioannou", Email: "maria@example.com",
			},
			Performance: &outcome.PerformanceSnapshot{Title: "Antigone"},
		},
	}

	job, err := buildNotificationJob(res, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "maria@example.com", job.Recipient)
	assert.Equal(t, "Maria Ioannou", job.Vars.FullName)
	assert.Equal(t, "Antigone", job.Vars.PerformanceTitle)
	assert.Equal(t, "QWE987", job.Vars.ReservationCode)
}

func TestBuildNotificationJobConflictFieldsDefaultToEmpty(t *testing.T) {
	res := &outcome.Result{
		Code:    outcome.CodeCreatedPending,
		Payload: outcome.Payload{PublicCode: "NEW111"},
	}

	job, err := buildNotificationJob(res, baseRequest())
	require.NoError(t, err)

	assert.Empty(t, job.Vars.ExistingCode)
	assert.Empty(t, job.Vars.ExistingDate)
	assert.Empty(t, job.Vars.ExistingTime)
	assert.Empty(t, job.Vars.ExistingSeats)
}
