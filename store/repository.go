// Package store persists directory records behind a single Repository
// contract with interchangeable backends: a local SQLite database, a
// Postgres database, and a serialized JSON collection kept in a blob slot
// (local file or S3 object). The backend is chosen at construction time.
package store

import (
	"context"
	"errors"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/models"
)

var (
	// ErrorNotFound is returned when the target record id is absent.
	ErrorNotFound = errors.New("record not found")

	// ErrorEmailExists is returned when an insert or update would leave two
	// records with the same email.
	ErrorEmailExists = errors.New("email already exists")
)

// Repository is the store contract the directory engine runs on.
// Implementations prepare their durable storage in the constructor
// (idempotent: safe against an already-initialized store).
//
// Every method takes the operation's context first and reports failures
// through the sentinel errors above, matched with errors.Is.
type Repository interface {
	// GetAll returns every record. Order is storage-defined (insertion
	// order for the backends in this package) and carries no meaning.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns one record or ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Insert stores a new record and returns it with its assigned id.
	// Returns ErrorEmailExists if the email is already taken.
	Insert(ctx context.Context, name, email, phone, password string) (*models.User, error)

	// UpdateFields replaces name, email and phone of an existing record,
	// leaving the password untouched. Returns ErrorNotFound if id is
	// absent, ErrorEmailExists if the new email belongs to a different
	// record.
	UpdateFields(ctx context.Context, id, name, email, phone string) error

	// UpdatePassword replaces the stored password. Returns ErrorNotFound
	// if id is absent.
	UpdatePassword(ctx context.Context, id, newPassword string) error

	// Delete removes the record permanently. Deleting an absent id returns
	// ErrorNotFound on every backend; it is never a silent no-op.
	Delete(ctx context.Context, id string) error
}
