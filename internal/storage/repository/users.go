package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его UID.
//
// Уникальность username дополнительно обеспечивается ограничением в базе:
// нарушение всплывает как *pgconn.PgError с кодом unique_violation.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	uid := user.UID
	if uid == "" {
		uid = uuid.New().String()
	}
	query := `INSERT INTO users (uid, username, password_hash)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, uid, user.Username, user.PasswordHash); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByUsername возвращает пользователя по username либо (nil, nil), если его нет.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, password_hash
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.UID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
