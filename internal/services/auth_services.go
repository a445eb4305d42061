package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8

	resetTokenTTL = time.Hour
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	CreateWithProfile(ctx context.Context, username, email, passwordhash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetProfile(ctx context.Context, userID int64) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, phone string) error
	SetPassword(ctx context.Context, userID int64, passwordhash string) error
}

type ResetTokenStore interface {
	Create(ctx context.Context, userID int64, token string, exp time.Time) error
	GetUserID(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	Users    UserStore
	Resets   ResetTokenStore
	Mailer   EmailSender
	ResetURL string // base URL the emailed token is appended to
	Log      *logrus.Logger
}

func NewAuthService(u UserStore, rs ResetTokenStore, mailer EmailSender, resetURL string, log *logrus.Logger) *AuthService {
	return &AuthService{Users: u, Resets: rs, Mailer: mailer, ResetURL: resetURL, Log: log}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}
	return nil
}

// Register creates the user together with its profile row. Username and
// email must be unique.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	taken, err := s.Users.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, fmt.Errorf("%w: username already taken", ErrValidation)
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: email already registered", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.CreateWithProfile(ctx, username, email, string(hash))
}

// Login authenticates with username + password and returns the user
// (without the password hash).
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		// do not reveal whether the username exists
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	u.PasswordHash = ""
	return u, nil
}

// RequestPasswordReset stores a one-hour token and emails the reset
// link. Unknown emails are rejected, matching the original behavior.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.validateEmail(email); err != nil {
		return err
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: no account with this email", ErrValidation)
	}

	token := uuid.NewString()
	if err := s.Resets.Create(ctx, u.UserID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}
	if err := s.Mailer.SendPasswordResetEmail(ctx, u.Email, s.ResetURL+"?token="+token); err != nil {
		s.Log.WithError(err).WithField("userid", u.UserID).Error("password reset email failed")
		return err
	}
	return nil
}

// ConfirmPasswordReset consumes the token and stores the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}
	userID, err := s.Resets.GetUserID(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: invalid or expired reset token", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Users.SetPassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	return s.Resets.Delete(ctx, token)
}

// Account returns the merged user + profile view for GET /profile.
func (s *AuthService) Account(ctx context.Context, userID int64) (*model.AccountResponse, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	p, err := s.Users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: profile", ErrNotFound)
	}
	return &model.AccountResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    p.Phone,
	}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, phone string) error {
	return s.Users.UpdateProfile(ctx, userID, phone)
}
