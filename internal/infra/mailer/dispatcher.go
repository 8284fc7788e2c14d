package mailer

import (
	"context"

	"github.com/jinzhu/copier"

	"reservation-gateway/internal/pkg/errs"
	"reservation-gateway/internal/usecase/commands"
)

// Dispatcher adapts the Mailer to the orchestrator's notification port.
type Dispatcher struct {
	mailer *Mailer
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	return &Dispatcher{mailer: mailer}
}

func (d *Dispatcher) Dispatch(ctx context.Context, job commands.NotificationJob) error {
	var vars Vars
	if err := copier.Copy(&vars, &job.Vars); err != nil {
		return errs.Wrap(err, "failed to map notification variables")
	}
	return d.mailer.Send(ctx, job.Recipient, string(job.Kind), vars)
}
