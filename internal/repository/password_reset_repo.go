package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID int64, token string, exp time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_resets (userid, token, expires_at)
		VALUES ($1, $2, $3)
	`, userID, token, exp)
	return err
}

func (r *PasswordResetRepository) GetUserID(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `
		SELECT userid FROM password_resets
		WHERE token = $1 AND expires_at > now()
	`, token).Scan(&userID)
	return userID, err
}

func (r *PasswordResetRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM password_resets WHERE token = $1`, token)
	return err
}
