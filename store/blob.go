package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/blobx"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/models"
)

// BlobRepository keeps the whole collection as one JSON array in a named
// slot. Every write decodes the collection, mutates it, and atomically
// replaces the slot, so readers never observe a partial state. Record ids
// are time-ordered UUIDs (v7).
//
// Suited to small directories; every operation is O(collection size).
type BlobRepository struct {
	slot blobx.Store
}

// NewBlobRepository binds the repository to a slot and makes sure the slot
// exists, writing an empty collection on first use. Idempotent.
func NewBlobRepository(ctx context.Context, slot blobx.Store) (*BlobRepository, error) {
	r := &BlobRepository{slot: slot}

	_, err := slot.Load(ctx)
	if errors.Is(err, blobx.ErrorSlotNotFound) {
		if err := r.save(ctx, []models.User{}); err != nil {
			return nil, err
		}
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *BlobRepository) load(ctx context.Context) ([]models.User, error) {
	data, err := r.slot.Load(ctx)
	if err != nil {
		if errors.Is(err, blobx.ErrorSlotNotFound) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	return users, nil
}

func (r *BlobRepository) save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	if err := r.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

func (r *BlobRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.load(ctx)
}

func (r *BlobRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrorNotFound
}

func (r *BlobRepository) Insert(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, ErrorEmailExists
		}
	}

	u := models.User{
		ID:       newRecordID(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}
	users = append(users, u)

	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BlobRepository) UpdateFields(ctx context.Context, id, name, email, phone string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	target := -1
	for i := range users {
		if users[i].ID == id {
			target = i
		} else if users[i].Email == email {
			return ErrorEmailExists
		}
	}
	if target < 0 {
		return ErrorNotFound
	}

	users[target].Name = name
	users[target].Email = email
	users[target].Phone = phone
	return r.save(ctx, users)
}

func (r *BlobRepository) UpdatePassword(ctx context.Context, id, newPassword string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Password = newPassword
			return r.save(ctx, users)
		}
	}
	return ErrorNotFound
}

func (r *BlobRepository) Delete(ctx context.Context, id string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.save(ctx, users)
		}
	}
	return ErrorNotFound
}

// newRecordID returns a time-derived token: UUIDv7 embeds a millisecond
// timestamp, so ids sort by creation time and never repeat in-process.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
