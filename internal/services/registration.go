package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/elite-arena/apiserver/types"
)

// ErrInvalidStatus is returned when a moderation call names a status
// outside the three-variant enum.
var ErrInvalidStatus = errors.New("invalid status")

// RegistrationRepository defines persistence operations for registrations.
type RegistrationRepository interface {
	List(ctx context.Context) ([]types.Registration, error)
	Get(ctx context.Context, id int) (types.Registration, error)
	Create(ctx context.Context, reg types.Registration) (types.Registration, error)
	UpdateStatus(ctx context.Context, id int, status types.Status) (types.Registration, error)
	Delete(ctx context.Context, id int) error
}

// EventPublisher publishes registration lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, reg types.Registration, previous types.Status) error
}

// Archiver stores a snapshot of a registration before deletion.
type Archiver interface {
	Store(ctx context.Context, reg types.Registration) error
}

// SubmitRequest carries the applicant-supplied fields of a new
// registration. Status is deliberately not an input; submissions always
// start pending.
type SubmitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Team  string `json:"team"`
	Age   int    `json:"age"`
}

// Validate checks that all fields are present and the age meets the
// inclusive minimum. The store's CHECK constraint backs this up.
func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Team, validation.Required),
		validation.Field(&r.Age, validation.Min(types.MinAge)),
	)
}

// RegistrationService implements the competition-entry workflow:
// submission, moderation, and deletion with an audit trail.
type RegistrationService struct {
	repo      RegistrationRepository
	publisher EventPublisher
	archiver  Archiver
	log       *slog.Logger
}

func NewRegistrationService(repo RegistrationRepository, publisher EventPublisher, archiver Archiver, log *slog.Logger) *RegistrationService {
	if log == nil {
		log = slog.Default()
	}
	return &RegistrationService{
		repo:      repo,
		publisher: publisher,
		archiver:  archiver,
		log:       log,
	}
}

// Submit validates and persists a new registration. The email is lowercased
// and the status is forced to pending regardless of caller input.
func (s *RegistrationService) Submit(ctx context.Context, req SubmitRequest) (types.Registration, error) {
	if err := req.Validate(); err != nil {
		return types.Registration{}, err
	}

	reg, err := s.repo.Create(ctx, types.Registration{
		Name:   req.Name,
		Email:  normalizeEmail(req.Email),
		Team:   req.Team,
		Age:    req.Age,
		Status: types.StatusPending,
	})
	if err != nil {
		return types.Registration{}, fmt.Errorf("create registration: %w", err)
	}

	s.publish(ctx, types.EventRegistrationSubmitted, reg, "")
	return reg, nil
}

// List returns all registrations, most recent first.
func (s *RegistrationService) List(ctx context.Context) ([]types.Registration, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a registration to the given status. Every pair of
// valid statuses is an allowed transition.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int, status types.Status) (types.Registration, error) {
	if !status.Valid() {
		return types.Registration{}, ErrInvalidStatus
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.Registration{}, err
	}
	if !types.CanTransition(current.Status, status) {
		return types.Registration{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return types.Registration{}, err
	}

	s.publish(ctx, types.EventRegistrationStatusChanged, updated, current.Status)
	return updated, nil
}

// Remove deletes a registration irreversibly. When an archive is
// configured the snapshot must land before the row goes away; an archive
// failure aborts the delete so the audit trail stays complete.
func (s *RegistrationService) Remove(ctx context.Context, id int) error {
	reg, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.archiver != nil {
		if err := s.archiver.Store(ctx, reg); err != nil {
			return fmt.Errorf("archive before delete: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, types.EventRegistrationDeleted, reg, "")
	return nil
}

// publish is best-effort: a broker outage must not fail the request.
func (s *RegistrationService) publish(ctx context.Context, eventType string, reg types.Registration, previous types.Status) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, reg, previous); err != nil {
		s.log.Error("publish registration event failed",
			"type", eventType,
			"registration_id", reg.ID,
			"error", err,
		)
	}
}

// IsValidationError reports whether err came from payload validation, as
// opposed to a persistence or broker failure.
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
