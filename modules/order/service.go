package order

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/orderguard/pkg/cache"
	"github.com/dmitrymomot/orderguard/pkg/logger"
	"github.com/dmitrymomot/orderguard/pkg/mailer"
)

var (
	// ErrDuplicateSubmission marks a resubmission inside the duplicate window.
	ErrDuplicateSubmission = errors.New("order: duplicate submission")
	// ErrFailedToStoreOrder wraps persistence failures.
	ErrFailedToStoreOrder = errors.New("order: failed to store order")
)

// Config tunes order intake behaviour from the environment.
type Config struct {
	DuplicateWindow     time.Duration `env:"ORDER_DUPLICATE_WINDOW" envDefault:"10m"`     // DuplicateWindow is how long a submitted applicationId blocks resubmission.
	ConfirmationSubject string        `env:"ORDER_CONFIRMATION_SUBJECT" envDefault:"We received your order"` // ConfirmationSubject is the confirmation email subject line.
}

// Storage is the persistence collaborator. Implementations must use
// parameterized queries; the pipeline's SQL filter is cleanup, not the
// injection defense.
type Storage interface {
	InsertOrder(ctx context.Context, id uuid.UUID, rec SanitizedOrderRecord) error
}

// Service wires the pipeline to its collaborators: storage, optional
// confirmation mail and a duplicate-submission guard.
type Service struct {
	cfg      Config
	pipeline *Pipeline
	storage  Storage
	sender   mailer.Sender
	log      *slog.Logger
	recent   *cache.TTL[string, struct{}]
}

// ServiceOption configures optional collaborators.
type ServiceOption func(*Service)

// WithSender enables confirmation email. Without it, accepted orders are
// simply not confirmed.
func WithSender(s mailer.Sender) ServiceOption {
	return func(svc *Service) { svc.sender = s }
}

// WithLogger sets the monitoring logger for the service and its pipeline.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(svc *Service) {
		if log != nil {
			svc.log = log
		}
	}
}

// WithDuplicateCache injects the duplicate-guard cache, letting tests
// control time. Without it, a real cache with the configured window is
// created.
func WithDuplicateCache(c *cache.TTL[string, struct{}]) ServiceOption {
	return func(svc *Service) {
		if c != nil {
			svc.recent = c
		}
	}
}

// NewService creates an order intake service.
func NewService(cfg Config, storage Storage, opts ...ServiceOption) *Service {
	svc := &Service{
		cfg:     cfg,
		storage: storage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.recent == nil {
		window := cfg.DuplicateWindow
		if window <= 0 {
			window = 10 * time.Minute
		}
		svc.recent = cache.NewTTL[string, struct{}](window)
	}
	svc.pipeline = NewPipeline(svc.log)

	return svc
}

// Submit runs the full intake flow for an already-decoded raw record:
// pre-validation, sanitization, business rules, duplicate guard,
// persistence and fire-and-forget confirmation. The returned Report always
// reflects the pipeline run; on violation or storage failure the order id
// is zero.
func (s *Service) Submit(ctx context.Context, raw *RawOrderRecord) (uuid.UUID, Report, error) {
	rep := s.pipeline.Sanitize(raw)
	if !rep.Success {
		return uuid.Nil, rep, nil
	}

	rec := *rep.Sanitized
	if out := ValidateBusinessRules(rec); !out.Valid {
		s.log.InfoContext(ctx, "order rejected by business rules",
			slog.Any("violations", out.Violations),
			logger.Digest(NewLogDigest(rec).Hash),
		)
		rep.Success = false
		rep.Sanitized = nil
		rep.Issues = append(rep.Issues, out.Violations...)
		return uuid.Nil, rep, nil
	}

	if !s.recent.SetIfAbsent(rec.ApplicationID, struct{}{}) {
		return uuid.Nil, rep, ErrDuplicateSubmission
	}

	id := uuid.New()
	if err := s.storage.InsertOrder(ctx, id, rec); err != nil {
		// Free the slot so a later retry is not locked out by a failure
		// that never persisted anything.
		s.recent.Delete(rec.ApplicationID)
		return uuid.Nil, rep, errors.Join(ErrFailedToStoreOrder, err)
	}

	s.confirm(rec, id)

	s.log.InfoContext(ctx, "order accepted",
		slog.String("order_id", id.String()),
		logger.Digest(NewLogDigest(rec).Hash),
		logger.Grade(rep.Performance.Grade),
	)
	return id, rep, nil
}

// confirm sends the confirmation email without blocking intake; delivery
// failures are logged and swallowed.
func (s *Service) confirm(rec SanitizedOrderRecord, id uuid.UUID) {
	if s.sender == nil {
		return
	}

	msg := mailer.Message{
		To:      rec.Email,
		Subject: s.cfg.ConfirmationSubject,
		BodyText: "Hello " + rec.FirstName + ",\n\n" +
			"we received your order and will process it shortly.\n" +
			"Reference: " + id.String() + "\n",
		Tag: "order-confirmation",
	}

	go func() {
		defer func() { _ = recover() }()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.sender.Send(ctx, msg); err != nil {
			s.log.Error("failed to send order confirmation",
				logger.Error(err),
				slog.String("order_id", id.String()),
			)
		}
	}()
}
