package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/dbx"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/migrations"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/models"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository keeps records in a local SQLite database, the same
// single-table layout the directory has always used:
//
//	id INTEGER PRIMARY KEY AUTOINCREMENT, name, email UNIQUE, phone, password
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dsn and applies
// pending schema migrations. SQLite allows a single writer, so the pool is
// capped at one connection; this also keeps ":memory:" databases coherent.
func NewSQLiteRepository(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db, "sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email, phone, password FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var id int64
		var u models.User
		if err := rows.Scan(&id, &u.Name, &u.Email, &u.Phone, &u.Password); err != nil {
			return nil, err
		}
		u.ID = strconv.FormatInt(id, 10)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	nid, err := parseRecordID(id)
	if err != nil {
		return nil, ErrorNotFound
	}

	query := `SELECT name, email, phone, password FROM users WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, nid)

	u := &models.User{ID: id}
	if err := row.Scan(&u.Name, &u.Email, &u.Phone, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	query := `INSERT INTO users (name, email, phone, password) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, name, email, phone, password)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return nil, ErrorEmailExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return &models.User{
		ID:       strconv.FormatInt(id, 10),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}, nil
}

// UpdateFields runs the collision check and the update in one transaction,
// so the email-uniqueness invariant holds at every committed state.
func (r *SQLiteRepository) UpdateFields(ctx context.Context, id, name, email, phone string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var other int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE email = ? AND id <> ?`, email, nid).Scan(&other)
		if err == nil {
			return ErrorEmailExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE users SET name = ?, email = ?, phone = ? WHERE id = ?`, name, email, phone, nid)
		if err != nil {
			if isSQLiteUniqueViolation(err) {
				return ErrorEmailExists
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return requireOneRow(res)
	})
}

func (r *SQLiteRepository) UpdatePassword(ctx context.Context, id, newPassword string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, newPassword, nid)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, nid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireOneRow(res)
}

// parseRecordID maps the opaque public id back to the integer key. Anything
// unparsable cannot address a row, which callers see as ErrorNotFound.
func parseRecordID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// requireOneRow turns a zero-rows-affected result into ErrorNotFound.
func requireOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return ErrorNotFound
	}
	return nil
}

func isSQLiteUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		serr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
