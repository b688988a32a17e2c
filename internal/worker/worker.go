package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eventra/backend/internal/emaillogs"
	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/queue"
)

// NotificationProcessor processes review notification jobs: render the
// decision notice for the organizer and record it in email_logs.
type NotificationProcessor struct {
	logRepo  *emaillogs.Repository
	queue    *queue.Queue
	fromAddr string
	fromName string
	logger   *zap.Logger
}

// NewNotificationProcessor creates a review notification processor.
func NewNotificationProcessor(logRepo *emaillogs.Repository, q *queue.Queue, fromAddr, fromName string, logger *zap.Logger) *NotificationProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationProcessor{logRepo: logRepo, queue: q, fromAddr: fromAddr, fromName: fromName, logger: logger}
}

// Process executes one review notification job.
func (p *NotificationProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeReviewNotification {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.ReviewNotificationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	subject := fmt.Sprintf("Your event %q was %s", payload.EventTitle, payload.ApprovalStatus)
	body := fmt.Sprintf("Hello,\n\nYour event %q has been %s.", payload.EventTitle, payload.ApprovalStatus)
	if payload.AdminFeedback != "" {
		body += "\n\nReviewer feedback:\n" + payload.AdminFeedback
	}

	if err := p.deliver(ctx, payload.OrganizerEmail, subject, body); err != nil {
		if _, logErr := p.logRepo.Record(ctx, payload.EventID, payload.OrganizerEmail, subject, models.EmailFailed); logErr != nil {
			p.logger.Error("record failed email", zap.Error(logErr))
		}
		return fmt.Errorf("deliver: %w", err)
	}

	if _, err := p.logRepo.Record(ctx, payload.EventID, payload.OrganizerEmail, subject, models.EmailSent); err != nil {
		return fmt.Errorf("record email log: %w", err)
	}

	p.logger.Info("review notification sent",
		zap.String("event_id", payload.EventID.String()),
		zap.String("recipient", payload.OrganizerEmail),
		zap.String("status", payload.ApprovalStatus))
	return nil
}

// deliver hands the message to the mail transport. SMTP wiring is deferred;
// for now the notice is logged with the sender identity so operators can
// trace it.
// TODO: plug in the SMTP relay once ops provisions the sending domain.
func (p *NotificationProcessor) deliver(_ context.Context, to, subject, body string) error {
	p.logger.Info("email",
		zap.String("from", fmt.Sprintf("%s <%s>", p.fromName, p.fromAddr)),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)))
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error. Returns once
// ctx is done, including mid-backoff.
func (p *NotificationProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification worker stopping")
			return
		default:
		}

		job, _, err := p.queue.Dequeue(ctx)
		if err != nil {
			p.logger.Warn("dequeue error", zap.Error(err))
			if !p.pause(ctx, queue.RetryBackoff) {
				p.logger.Info("notification worker stopping")
				return
			}
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			if !p.pause(ctx, queue.RetryBackoff) {
				p.logger.Info("notification worker stopping")
				return
			}
			continue
		}
	}
}

// pause waits for d or until ctx is done, reporting whether the full backoff
// elapsed.
func (p *NotificationProcessor) pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
