//go:build unit

package mailer_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"

	"reservation-gateway/internal/infra/mailer"
	"reservation-gateway/internal/pkg/config"
	"reservation-gateway/internal/usecase/commands"
)

type captureSender struct {
	messages []*gomail.Message
}

func (c *captureSender) Send(m *gomail.Message) error {
	c.messages = append(c.messages, m)
	return nil
}

func sampleVars() mailer.Vars {
	return mailer.Vars{
		FullName:         "Anna Papadopoulou",
		PerformanceTitle: "Antigone",
		ReservationCode:  "QWE987",
		Date:             "2026-09-12",
		Time:             "21:00",
		Seats:            "2",
	}
}

func TestRenderActiveConfirmation(t *testing.T) {
	subject, body, err := mailer.Render("active-confirmation", sampleVars())
	require.NoError(t, err)

	assert.Equal(t, "Your reservation is confirmed", subject)
	assert.Contains(t, body, "Anna Papadopoulou")
	assert.Contains(t, body, "Antigone")
	assert.Contains(t, body, "QWE987")
	assert.Contains(t, body, "cid:qr.png")
}

func TestRenderPendingWithConflict(t *testing.T) {
	vars := sampleVars()
	vars.ExistingCode = "OLD777"
	vars.ExistingDate = "2026-09-12"
	vars.ExistingTime = "21:00"
	vars.ExistingSeats = "3"

	subject, body, err := mailer.Render("pending-with-conflict", vars)
	require.NoError(t, err)

	assert.Equal(t, "Your reservation is pending review", subject)
	assert.Contains(t, body, "OLD777")
	assert.Contains(t, body, "pending review")
	assert.NotContains(t, body, "cid:qr.png")
}

func TestRenderCancellation(t *testing.T) {
	subject, body, err := mailer.Render("cancellation", sampleVars())
	require.NoError(t, err)

	assert.Equal(t, "Your reservation has been canceled", subject)
	assert.Contains(t, body, "canceled")
}

func TestRenderUnknownKind(t *testing.T) {
	_, _, err := mailer.Render("no-such-kind", sampleVars())
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	vars := sampleVars()
	vars.FullName = "<script>alert(1)</script>"

	_, body, err := mailer.Render("cancellation", vars)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}

func newTestMailer(sender mailer.Sender) *mailer.Mailer {
	cfg := config.MailConfig{From: "box-office@example.com"}
	return mailer.NewMailerWithSender(cfg, sender, slog.New(slog.DiscardHandler))
}

func TestSendAssemblesMessage(t *testing.T) {
	sender := &captureSender{}
	m := newTestMailer(sender)

	err := m.Send(context.Background(), "anna@example.com", "active-confirmation", sampleVars())
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, []string{"box-office@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"anna@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your reservation is confirmed"}, msg.GetHeader("Subject"))
	assert.True(t, strings.HasPrefix(msg.GetHeader("Message-ID")[0], "<"))
}

func TestSendCanceledContext(t *testing.T) {
	sender := &captureSender{}
	m := newTestMailer(sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "anna@example.com", "cancellation", sampleVars())
	assert.Error(t, err)
	assert.Empty(t, sender.messages)
}

func TestDispatcherMapsJobToVars(t *testing.T) {
	sender := &captureSender{}
	d := mailer.NewDispatcher(newTestMailer(sender))

	job := commands.NotificationJob{
		Recipient: "anna@example.com",
		Kind:      commands.KindPendingWithConflict,
		Vars: commands.NotificationVars{
			FullName:        "Anna Papadopoulou",
			ReservationCode: "NEW111",
			ExistingCode:    "OLD777",
		},
	}

	err := d.Dispatch(context.Background(), job)
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"Your reservation is pending review"}, sender.messages[0].GetHeader("Subject"))
}
