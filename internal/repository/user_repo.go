package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateWithProfile inserts the user and its profile row in one
// transaction. The profile is part of account construction, not a
// side effect.
func (r *UserRepository) CreateWithProfile(ctx context.Context, username, email, passwordhash string) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	query := `INSERT INTO users (username, email, passwordhash, created_at) VALUES ($1, $2, $3, $4) RETURNING userid`
	if err := tx.QueryRow(ctx, query, username, email, passwordhash, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO profiles (userid, phone) VALUES ($1, '')`, id); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	query := `SELECT userid, username, email, passwordhash, created_at FROM users WHERE username=$1`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT userid, username, email, passwordhash, created_at FROM users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT userid, username, email, created_at FROM users WHERE userid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.UserID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	var p model.Profile
	query := `SELECT userid, phone FROM profiles WHERE userid=$1`
	if err := r.DB.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.Phone); err != nil {
		return nil, errors.New("profile not found")
	}
	return &p, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, phone string) error {
	query := `UPDATE profiles SET phone=$1 WHERE userid=$2`
	tag, err := r.DB.Exec(ctx, query, phone, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("profile not found")
	}
	return nil
}

// SetPassword stores a new password hash (password-reset completion).
func (r *UserRepository) SetPassword(ctx context.Context, userID int64, passwordhash string) error {
	query := `UPDATE users SET passwordhash=$1 WHERE userid=$2`
	tag, err := r.DB.Exec(ctx, query, passwordhash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}
