package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/metrics"
	"github.com/SAP-F-2025/english-school-service/internal/repositories"
	"github.com/SAP-F-2025/english-school-service/internal/validator"
)

// Dependencies are shared by every entity service
type Dependencies struct {
	UnitOfWork repositories.UnitOfWorkFactory
	Cache      *ListCache
	Validator  *validator.Validator
	Publisher  events.EventPublisher
	Hasher     PasswordHasher
	Logger     *slog.Logger
}

type baseService struct {
	uows      repositories.UnitOfWorkFactory
	cache     *ListCache
	validator *validator.Validator
	publisher events.EventPublisher
	hasher    PasswordHasher
	logger    *slog.Logger
}

func newBaseService(deps Dependencies, entity string) baseService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	hasher := deps.Hasher
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	return baseService{
		uows:      deps.UnitOfWork,
		cache:     deps.Cache,
		validator: deps.Validator,
		publisher: publisher,
		hasher:    hasher,
		logger:    logger.With("service", entity),
	}
}

// validate returns the validation failures for req as an error, or nil
func (s *baseService) validate(req interface{}) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return errs
	}
	return nil
}

// requireUser fails with a userId validation error when the user is missing
func (s *baseService) requireUser(ctx context.Context, uow repositories.UnitOfWork, userID uint) error {
	ok, err := uow.Users().Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return missingUserError(userID)
	}
	return nil
}

// committed records a successful write and publishes its event. Publish
// failures are logged; the write itself already succeeded.
func (s *baseService) committed(ctx context.Context, entity, op, eventType string, id uint, state interface{}) {
	metrics.EntityWrites.WithLabelValues(entity, op).Inc()

	event := events.NewEvent(eventType, events.EntityEvent{Entity: entity, ID: id, State: state})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "error", err, "event_type", eventType, "id", id)
	}
}
