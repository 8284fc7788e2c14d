package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	gomail "gopkg.in/gomail.v2"

	"reservation-gateway/internal/pkg/config"
	"reservation-gateway/internal/pkg/errs"
)

const qrSize = 256

// Sender delivers one assembled message. The production implementation dials
// SMTP per message; tests substitute their own.
type Sender interface {
	Send(m *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func (s smtpSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

// Mailer renders and sends notification messages. It is the I/O wrapper in
// front of SMTP; retry and queueing are deliberately absent.
type Mailer struct {
	from   string
	sender Sender
	logger *slog.Logger
}

func NewMailer(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	return NewMailerWithSender(cfg, smtpSender{dialer: dialer}, logger)
}

func NewMailerWithSender(cfg config.MailConfig, sender Sender, logger *slog.Logger) *Mailer {
	return &Mailer{
		from:   cfg.From,
		sender: sender,
		logger: logger,
	}
}

// Vars are the rendering variables of one notification. The struct mirrors
// the orchestrator's job payload so templates stay decoupled from it.
type Vars struct {
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

// Render produces the subject and HTML body for a notification kind.
func Render(kind string, vars Vars) (subject, body string, err error) {
	subject, ok := subjects[kind]
	if !ok {
		return "", "", errs.New("no template for notification kind " + kind)
	}

	var buf bytes.Buffer
	if err := bodyTemplates.ExecuteTemplate(&buf, kind, vars); err != nil {
		return "", "", errs.Wrap(err, "failed to render notification body")
	}
	return subject, buf.String(), nil
}

// Send renders and delivers one message. The scannable code is attached
// inline for the active confirmation only.
func (m *Mailer) Send(ctx context.Context, recipient, kind string, vars Vars) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "notification context canceled")
	}

	subject, body, err := Render(kind, vars)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@reservation-gateway>", uuid.NewString()))
	msg.SetBody("text/html", body)

	if kind == "active-confirmation" && vars.ReservationCode != "" {
		png, qrErr := qrcode.Encode(vars.ReservationCode, qrcode.Medium, qrSize)
		if qrErr != nil {
			// the confirmation is still useful without the code image
			m.logger.Warn("failed to encode reservation QR", "error", qrErr)
		} else {
			msg.Embed("qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, writeErr := w.Write(png)
				return writeErr
			}))
		}
	}

	if err := m.sender.Send(msg); err != nil {
		return errs.Wrap(err, "failed to send notification mail")
	}

	m.logger.Info("notification sent", "kind", kind, "recipient", recipient)
	return nil
}
