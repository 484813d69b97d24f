package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/dbx"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/migrations"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/models"
)

// pgUniqueViolation is the Postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

// PostgresRepository is the relational backend on Postgres, for embedders
// that already run one. Same table shape as the SQLite backend, with a
// BIGSERIAL key.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository connects using the pgx stdlib driver and applies
// pending schema migrations.
func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := migrations.Up(ctx, db, "postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresRepository{db: db}, nil
}

// Close releases the underlying connection pool.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.User, error) {
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	nid, err := parseRecordID(id)
	if err != nil {
		return nil, ErrorNotFound
	}

	query := `SELECT name, email, phone, password FROM users WHERE id = $1`
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

func (r *PostgresRepository) Insert(ctx context.Context, name, email, phone, password string) (*models.User, error) {
	query := `INSERT INTO users (name, email, phone, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, name, email, phone, password).Scan(&id)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, ErrorEmailExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &models.User{
		ID:       strconv.FormatInt(id, 10),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}, nil
}

func (r *PostgresRepository) UpdateFields(ctx context.Context, id, name, email, phone string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var other int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE email = $1 AND id <> $2`, email, nid).Scan(&other)
		if err == nil {
			return ErrorEmailExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE users SET name = $1, email = $2, phone = $3 WHERE id = $4`, name, email, phone, nid)
		if err != nil {
			if isPgUniqueViolation(err) {
				return ErrorEmailExists
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return requireOneRow(res)
	})
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, newPassword string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = $1 WHERE id = $2`, newPassword, nid)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	nid, err := parseRecordID(id)
	if err != nil {
		return ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, nid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireOneRow(res)
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
