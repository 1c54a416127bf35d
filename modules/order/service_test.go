package order_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/modules/order"
	"github.com/dmitrymomot/orderguard/pkg/cache"
	"github.com/dmitrymomot/orderguard/pkg/mailer"
)

type stubStorage struct {
	mu       sync.Mutex
	inserted []order.SanitizedOrderRecord
	err      error
}

func (s *stubStorage) InsertOrder(_ context.Context, _ uuid.UUID, rec order.SanitizedOrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, rec)
	return nil
}

func (s *stubStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

type stubSender struct {
	sent chan mailer.Message
}

func newStubSender() *stubSender {
	return &stubSender{sent: make(chan mailer.Message, 8)}
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) error {
	s.sent <- msg
	return nil
}

func newTestService(storage order.Storage, opts ...order.ServiceOption) *order.Service {
	opts = append(opts, order.WithLogger(slog.New(slog.DiscardHandler)))
	return order.NewService(order.Config{
		DuplicateWindow:     10 * time.Minute,
		ConfirmationSubject: "We received your order",
	}, storage, opts...)
}

func TestServiceSubmit(t *testing.T) {
	storage := &stubStorage{}
	sender := newStubSender()
	svc := newTestService(storage, order.WithSender(sender))

	id, rep, err := svc.Submit(context.Background(), validRawOrder())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.True(t, rep.Success)
	require.Equal(t, 1, storage.count())
	assert.Equal(t, "jean.paul@example.com", storage.inserted[0].Email)

	select {
	case msg := <-sender.sent:
		assert.Equal(t, "jean.paul@example.com", msg.To)
		assert.Equal(t, "We received your order", msg.Subject)
		assert.Contains(t, msg.BodyText, id.String())
	case <-time.After(time.Second):
		t.Fatal("confirmation email was not sent")
	}
}

func TestServiceSubmitWithoutSender(t *testing.T) {
	storage := &stubStorage{}
	svc := newTestService(storage)

	id, _, err := svc.Submit(context.Background(), validRawOrder())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, storage.count())
}

func TestServiceSubmitSanitizationFailure(t *testing.T) {
	storage := &stubStorage{}
	svc := newTestService(storage)

	raw := validRawOrder()
	raw.Email = "broken"

	id, rep, err := svc.Submit(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.False(t, rep.Success)
	assert.Zero(t, storage.count())
}

func TestServiceSubmitBusinessRuleViolation(t *testing.T) {
	storage := &stubStorage{}
	svc := newTestService(storage)

	raw := validRawOrder()
	raw.AccountName = "ACC12345"

	id, rep, err := svc.Submit(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.False(t, rep.Success)
	assert.Nil(t, rep.Sanitized)
	assert.Contains(t, rep.Issues, "account name and account number must differ")
	assert.Zero(t, storage.count())
}

func TestServiceSubmitDuplicate(t *testing.T) {
	storage := &stubStorage{}
	svc := newTestService(storage)

	_, _, err := svc.Submit(context.Background(), validRawOrder())
	require.NoError(t, err)

	_, _, err = svc.Submit(context.Background(), validRawOrder())
	require.ErrorIs(t, err, order.ErrDuplicateSubmission)
	assert.Equal(t, 1, storage.count())
}

func TestServiceSubmitDuplicateWindowExpires(t *testing.T) {
	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	storage := &stubStorage{}
	recent := cache.NewTTL[string, struct{}](10*time.Minute, cache.WithClock(clock))
	svc := newTestService(storage, order.WithDuplicateCache(recent))

	_, _, err := svc.Submit(context.Background(), validRawOrder())
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(11 * time.Minute)
	mu.Unlock()

	_, _, err = svc.Submit(context.Background(), validRawOrder())
	require.NoError(t, err)
	assert.Equal(t, 2, storage.count())
}

func TestServiceSubmitStorageFailure(t *testing.T) {
	storage := &stubStorage{err: errors.New("connection refused")}
	svc := newTestService(storage)

	id, _, err := svc.Submit(context.Background(), validRawOrder())

	require.ErrorIs(t, err, order.ErrFailedToStoreOrder)
	assert.Equal(t, uuid.Nil, id)

	// The duplicate slot is released, retrying after a transient failure
	// must not be blocked.
	storage.mu.Lock()
	storage.err = nil
	storage.mu.Unlock()

	_, _, err = svc.Submit(context.Background(), validRawOrder())
	require.NoError(t, err)
	assert.Equal(t, 1, storage.count())
}
