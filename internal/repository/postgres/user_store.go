package postgres

import (
	"context"
	"errors"
	"fmt"

	"globemart-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type userStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) domain.UserStore {
	return &userStore{db: db}
}

// Create inserts the user. Email uniqueness is serialized by the users_email
// unique constraint, not by application-level locking.
func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash,
		strPtr(user.FirstName), strPtr(user.LastName), user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateAccount
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx,
		`SELECT id, email, password_hash, first_name, last_name, created_at
		 FROM users WHERE email = $1`, email)
}

func (s *userStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx,
		`SELECT id, email, password_hash, first_name, last_name, created_at
		 FROM users WHERE id = $1`, id)
}

func (s *userStore) getOne(ctx context.Context, sql string, arg interface{}) (*domain.User, error) {
	var (
		u         domain.User
		firstName *string
		lastName  *string
	)
	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &firstName, &lastName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.FirstName = ptrString(firstName)
	u.LastName = ptrString(lastName)
	return &u, nil
}

func ptrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
