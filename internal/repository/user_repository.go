package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/admin-console/internal/domain"
)

var (
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an email is already taken.
	ErrDuplicateEmail = errors.New("email already in use")
)

const uniqueViolation = "23505"

// UserRepository defines persistence access for directory members.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// OpenUserRepository returns the Postgres repository when pool is set and an
// in-memory directory otherwise, seeded with the demo members when seed is true.
func OpenUserRepository(pool *pgxpool.Pool, seed bool) UserRepository {
	if pool != nil {
		return NewUserRepository(pool)
	}
	if seed {
		return NewMemoryUserRepository(SeedUsers())
	}
	return NewMemoryUserRepository(nil)
}

const userColumns = `id, name, email, role, status, department, avatar, created_at, last_login`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, name, email, role, status, department, avatar, created_at, last_login)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	id := uuid.NewString()
	createdAt := time.Now().UTC()

	_, err := r.pool.Exec(ctx, query,
		id,
		user.Name,
		user.Email,
		user.Role,
		user.Status,
		user.Department,
		user.Avatar,
		createdAt,
		user.LastLogin,
	)
	if err != nil {
		return translatePgError(err)
	}
	user.ID = id
	user.CreatedAt = createdAt
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, email=$2, role=$3, status=$4, department=$5, avatar=$6, last_login=$7
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.Role,
		user.Status,
		user.Department,
		user.Avatar,
		user.LastLogin,
		user.ID,
	)
	if err != nil {
		return translatePgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id=$1`, userColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(email)=LOWER($1)`, userColumns)
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at, id`, userColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.Department,
		&user.Avatar,
		&user.CreatedAt,
		&user.LastLogin,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	result := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Status,
			&user.Department,
			&user.Avatar,
			&user.CreatedAt,
			&user.LastLogin,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}
