package services

import "context"

type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, resetURL string) error
}
