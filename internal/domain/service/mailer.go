// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import "context"

// Mailer is the raw email primitive: one synchronous delivery attempt with
// no built-in retry. Retry policy belongs to the MailDispatcher.
type Mailer interface {
	// SendEmail delivers a single HTML email to one recipient.
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// DispatchResult reports the outcome of a dispatch, including exhausted
// retries. Callers inspect it instead of receiving an error so that a failed
// delivery can be logged without aborting the surrounding pipeline.
type DispatchResult struct {
	Delivered bool   // Whether any attempt succeeded.
	Attempts  int    // Number of attempts made.
	Err       error  // Last attempt's error when Delivered is false.
	Recipient string // Address the dispatch targeted.
}

// MailDispatcher wraps a Mailer with bounded retries and backoff. Safe for
// concurrent use across farms; no state is shared between calls.
type MailDispatcher interface {
	// Dispatch attempts delivery up to the configured attempt ceiling with
	// exponential backoff between attempts. It never returns an error; the
	// outcome is encoded in the result.
	Dispatch(ctx context.Context, to, subject, htmlBody string) DispatchResult
}
