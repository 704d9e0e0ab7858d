package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyMailer fails a fixed number of attempts before succeeding.
type flakyMailer struct {
	failures int
	calls    int
}

func (m *flakyMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	m.calls++
	if m.calls <= m.failures {
		return errors.New("smtp: connection refused")
	}

	return nil
}

func newTestDispatcher(mailer *flakyMailer, maxAttempts int) (*dispatcher, *[]time.Duration) {
	var backoffs []time.Duration

	return &dispatcher{
		mailer:      mailer,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: maxAttempts,
		backoffBase: time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			backoffs = append(backoffs, d)

			return nil
		},
	}, &backoffs
}

func TestDispatcher_SucceedsFirstAttempt(t *testing.T) {
	mailer := &flakyMailer{}
	d, backoffs := newTestDispatcher(mailer, 3)

	result := d.Dispatch(context.Background(), "owner@farm.test", "subject", "<p>body</p>")

	assert.True(t, result.Delivered)
	assert.Equal(t, 1, result.Attempts)
	assert.NoError(t, result.Err)
	assert.Empty(t, *backoffs)
}

func TestDispatcher_RetriesWithExponentialBackoff(t *testing.T) {
	mailer := &flakyMailer{failures: 2}
	d, backoffs := newTestDispatcher(mailer, 3)

	result := d.Dispatch(context.Background(), "owner@farm.test", "subject", "body")

	assert.True(t, result.Delivered)
	assert.Equal(t, 3, result.Attempts)
	require.Len(t, *backoffs, 2)
	assert.Equal(t, time.Second, (*backoffs)[0])
	assert.Equal(t, 2*time.Second, (*backoffs)[1])
}

func TestDispatcher_ExhaustsAttemptsAndReportsFailure(t *testing.T) {
	mailer := &flakyMailer{failures: 10}
	d, _ := newTestDispatcher(mailer, 3)

	result := d.Dispatch(context.Background(), "owner@farm.test", "subject", "body")

	assert.False(t, result.Delivered)
	assert.Equal(t, 3, result.Attempts)
	assert.Error(t, result.Err)
	assert.Equal(t, 3, mailer.calls)
}

func TestDispatcher_StopsWhenContextCanceled(t *testing.T) {
	mailer := &flakyMailer{failures: 10}
	d := &dispatcher{
		mailer:      mailer,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: 3,
		backoffBase: time.Second,
		sleep:       sleepContext,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := d.Dispatch(ctx, "owner@farm.test", "subject", "body")

	assert.False(t, result.Delivered)
	// First attempt runs, the backoff wait observes the cancellation.
	assert.Equal(t, 1, result.Attempts)
	assert.ErrorIs(t, result.Err, context.Canceled)
}
