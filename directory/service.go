// Package directory implements the record directory engine: the CRUD and
// password-change protocols over a store.Repository, with all validation
// and identity invariants enforced here, before anything touches the store.
//
// The engine is meant for a single caller goroutine (one user driving one
// UI); it keeps no state besides a list cache refreshed after successful
// mutations.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/format"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/logging"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/models"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/store"
)

// Confirmer answers the engine's "deletion requested" signal. The
// presentation layer typically shows a yes/no dialog and reports the
// outcome.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

const deletePrompt = "Are you sure you want to delete this record?"

// Service is the directory engine. Construct with NewService; methods must
// not be called concurrently.
type Service struct {
	repo      store.Repository
	confirmer Confirmer
	log       logging.Logger

	// users is the cached list, synchronized with the store after every
	// successful mutation. Callers read it through List and must not
	// modify it.
	users []models.User
}

// NewService builds an engine over repo. A nil confirmer approves every
// deletion; a nil logger discards logs.
func NewService(repo store.Repository, confirmer Confirmer, log logging.Logger) *Service {
	if confirmer == nil {
		confirmer = ConfirmerFunc(func(context.Context, string) (bool, error) { return true, nil })
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Service{repo: repo, confirmer: confirmer, log: log}
}

// List returns the cached record list. It reflects the store as of the
// last Refresh or successful mutation; call Refresh after constructing the
// service to populate it.
func (s *Service) List() []models.User {
	return s.users
}

// Refresh reloads the cache from the store.
func (s *Service) Refresh(ctx context.Context) error {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh record list: %w", err)
	}
	s.users = users
	return nil
}

// Create validates and stores a new record. Checks run in order and the
// first failure is returned alone: name/email shape (ErrorInvalidInput),
// password confirmation (ErrorPasswordMismatch), password policy
// (ErrorWeakPassword), then email uniqueness (ErrorDuplicateEmail). The
// phone is canonicalized with format.Phone before storing.
func (s *Service) Create(ctx context.Context, name, email, phone, password, confirmPassword string) (*models.User, error) {
	if name == "" || email == "" || !format.ValidEmail(email) {
		return nil, ErrorInvalidInput
	}
	if password != confirmPassword {
		return nil, ErrorPasswordMismatch
	}
	if !format.ValidPassword(password) {
		return nil, ErrorWeakPassword
	}

	u, err := s.repo.Insert(ctx, name, email, format.Phone(phone), password)
	if err != nil {
		if errors.Is(err, store.ErrorEmailExists) {
			return nil, ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.log.Info(ctx, "record created", "record_id", u.ID)
	s.refreshAfterMutation(ctx)
	return u, nil
}

// Update replaces name, email and phone of an existing record. The
// password is not touched. Same name/email validation as Create; an email
// collision with a different record returns ErrorDuplicateEmail, an absent
// id store.ErrorNotFound.
func (s *Service) Update(ctx context.Context, id, name, email, phone string) error {
	if name == "" || email == "" || !format.ValidEmail(email) {
		return ErrorInvalidInput
	}

	if err := s.repo.UpdateFields(ctx, id, name, email, format.Phone(phone)); err != nil {
		if errors.Is(err, store.ErrorEmailExists) {
			return ErrorDuplicateEmail
		}
		if errors.Is(err, store.ErrorNotFound) {
			return store.ErrorNotFound
		}
		return fmt.Errorf("failed to update record: %w", err)
	}

	s.log.Info(ctx, "record updated", "record_id", id)
	s.refreshAfterMutation(ctx)
	return nil
}

// Delete asks the confirmer before removing the record. A declined
// confirmation is a no-op, not an error. Deleting an absent id returns
// store.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.confirmer.Confirm(ctx, deletePrompt)
	if err != nil {
		return fmt.Errorf("failed to confirm deletion: %w", err)
	}
	if !ok {
		s.log.Debug(ctx, "deletion declined", "record_id", id)
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrorNotFound) {
			return store.ErrorNotFound
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.log.Info(ctx, "record deleted", "record_id", id)
	s.refreshAfterMutation(ctx)
	return nil
}

// ChangePassword runs the three-gate protocol, short-circuiting at the
// first failure: verify the old password (ErrorWrongOldPassword), check
// the confirmation (ErrorPasswordMismatch), check the policy
// (ErrorWeakPassword), then commit. Nothing is written unless all gates
// pass.
func (s *Service) ChangePassword(ctx context.Context, id, oldPassword, newPassword, confirmNewPassword string) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrorNotFound) {
			return store.ErrorNotFound
		}
		return fmt.Errorf("failed to load record: %w", err)
	}

	if u.Password != oldPassword {
		return ErrorWrongOldPassword
	}
	if newPassword != confirmNewPassword {
		return ErrorPasswordMismatch
	}
	if !format.ValidPassword(newPassword) {
		return ErrorWeakPassword
	}

	if err := s.repo.UpdatePassword(ctx, id, newPassword); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.log.Info(ctx, "password changed", "record_id", id)
	s.refreshAfterMutation(ctx)
	return nil
}

// refreshAfterMutation keeps the cache in step with the store. A refresh
// failure after a committed mutation does not fail the operation; the
// previous cache stays in place and the error is logged.
func (s *Service) refreshAfterMutation(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.log.Error(ctx, "cache refresh failed", "error", err)
	}
}
