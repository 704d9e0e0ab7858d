package mail

import (
	"context"
	"log/slog"
	"time"

	"herdwatch/config"
	"herdwatch/internal/domain/service"
)

// dispatcher implements the service.MailDispatcher interface. It wraps the
// raw Mailer with a bounded attempt ceiling and exponential backoff. All
// state is per-call, so concurrent dispatches for different recipients never
// interfere.
type dispatcher struct {
	mailer      service.Mailer
	logger      *slog.Logger
	maxAttempts int
	backoffBase time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewDispatcher is the constructor for dispatcher.
func NewDispatcher(cfg *config.Config, logger *slog.Logger, mailer service.Mailer) service.MailDispatcher {
	return &dispatcher{
		mailer:      mailer,
		logger:      logger,
		maxAttempts: cfg.Alert.MailMaxAttempts,
		backoffBase: cfg.Alert.MailBackoffBase,
		sleep:       sleepContext,
	}
}

// Dispatch attempts delivery up to the attempt ceiling with exponential
// backoff (base * 2^n) between attempts. The outcome is a result value, not
// an error: a lost email is logged by the caller, never escalated.
func (d *dispatcher) Dispatch(ctx context.Context, to, subject, htmlBody string) service.DispatchResult {
	result := service.DispatchResult{Recipient: to}

	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := d.backoffBase << (attempt - 1)
			if err := d.sleep(ctx, backoff); err != nil {
				result.Err = err

				return result
			}
		}

		result.Attempts++
		err := d.mailer.SendEmail(ctx, to, subject, htmlBody)
		if err == nil {
			result.Delivered = true
			result.Err = nil

			return result
		}

		result.Err = err
		d.logger.Warn("Email delivery attempt failed",
			slog.String("recipient", to),
			slog.Int("attempt", result.Attempts),
			slog.Int("maxAttempts", d.maxAttempts),
			slog.Any("error", err),
		)
	}

	return result
}

// sleepContext waits for the duration unless the context is canceled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
