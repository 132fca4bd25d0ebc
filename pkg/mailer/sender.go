package mailer

import (
	"context"

	"github.com/orderdeck/orderdeck/pkg/helpers"
)

// Sender delivers an EmailJob. The application layer treats delivery as
// best-effort: a Sender error is logged and surfaced as a warning, never as a
// failed mutation.
type Sender interface {
	Send(ctx context.Context, job EmailJob) error
}

// QueueSender hands jobs to RabbitMQ for the email worker to deliver.
type QueueSender struct {
	Pub *helpers.RabbitPublisher
}

func (s *QueueSender) Send(ctx context.Context, job EmailJob) error {
	return s.Pub.PublishJSON(ctx, job)
}

// DirectSender bypasses the queue and sends through Mailgun inline. Used when
// RabbitMQ is not configured.
type DirectSender struct {
	MG *Mailgun
}

func (s *DirectSender) Send(ctx context.Context, job EmailJob) error {
	return s.MG.Send(ctx, job.To, job.Subject, job.Text, job.HTML)
}

// Disabled drops every job. Wired when MAIL_SEND_ENABLED=false.
type Disabled struct{}

func (Disabled) Send(context.Context, EmailJob) error { return nil }
