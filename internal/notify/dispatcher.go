package notify

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// Summary is the slice of a reservation the notification templates need.
type Summary struct {
	ID          int64
	Type        entity.ResourceType
	Title       string
	Day         string
	Start       string
	End         string
	Description string
}

// Dispatcher fires informational emails on reservation lifecycle events.
// Every send is best-effort: the triggering operation has already
// committed, so failures are logged and swallowed. Recipients are the
// reservation owner plus the configured admin list.
type Dispatcher struct {
	mailer  Mailer
	admins  []string
	enabled bool
	log     *zap.Logger
}

func NewDispatcher(mailer Mailer, config utils.NotifyConfig, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:  mailer,
		admins:  config.AdminEmails,
		enabled: config.Enabled && mailer != nil,
		log:     log.With(zap.String("component", "notify")),
	}
}

func (d *Dispatcher) ReservationCreated(ctx context.Context, owner *entity.User, summary Summary) {
	subject := fmt.Sprintf("New reservation #%d", summary.ID)
	body := fmt.Sprintf(
		"%s submitted a new %s reservation.\n\n%s\nDate: %s\nTime: %s - %s\n",
		owner.Name, summary.Type, summary.Title, summary.Day, summary.Start, summary.End,
	)
	d.send(ctx, owner, summary, subject, body)
}

func (d *Dispatcher) ReservationApproved(ctx context.Context, owner *entity.User, summary Summary) {
	subject := fmt.Sprintf("Reservation #%d approved", summary.ID)
	body := fmt.Sprintf(
		"The reservation below has been approved.\n\n%s\nReserved by: %s\nDate: %s\nTime: %s - %s\n",
		summary.Title, owner.Name, summary.Day, summary.Start, summary.End,
	)
	d.send(ctx, owner, summary, subject, body)
}

func (d *Dispatcher) ReservationCanceled(ctx context.Context, owner *entity.User, summary Summary) {
	subject := fmt.Sprintf("Reservation #%d canceled", summary.ID)
	body := fmt.Sprintf(
		"The reservation below has been canceled.\n\n%s\nReserved by: %s\nDate: %s\nTime: %s - %s\n",
		summary.Title, owner.Name, summary.Day, summary.Start, summary.End,
	)
	d.send(ctx, owner, summary, subject, body)
}

func (d *Dispatcher) send(ctx context.Context, owner *entity.User, summary Summary, subject, body string) {
	if !d.enabled {
		return
	}

	recipients := d.recipients(owner)
	if len(recipients) == 0 {
		d.log.Warn("No notification recipients configured",
			zap.Int64("reservation_id", summary.ID),
			zap.String("type", string(summary.Type)),
		)
		return
	}

	if err := d.mailer.Send(ctx, recipients, subject, body); err != nil {
		// Never propagated: the reservation operation already succeeded.
		d.log.Error("Failed to send notification email",
			zap.Error(err),
			zap.Int64("reservation_id", summary.ID),
			zap.String("type", string(summary.Type)),
			zap.String("subject", subject),
		)
		return
	}

	d.log.Info("Notification email sent",
		zap.Int64("reservation_id", summary.ID),
		zap.String("type", string(summary.Type)),
		zap.Int("recipients", len(recipients)),
	)
}

func (d *Dispatcher) recipients(owner *entity.User) []string {
	seen := make(map[string]bool)
	var recipients []string

	if owner != nil && owner.Email != "" {
		seen[owner.Email] = true
		recipients = append(recipients, owner.Email)
	}
	for _, email := range d.admins {
		if email != "" && !seen[email] {
			seen[email] = true
			recipients = append(recipients, email)
		}
	}

	return recipients
}
