package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PasswordResetRepository interface {
	SaveResetToken(ctx context.Context, token string, userID uuid.UUID) error
}

type passwordResetRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPasswordResetRepo(client *redis.Client, ttl time.Duration) PasswordResetRepository {
	return &passwordResetRepository{client: client, ttl: ttl}
}

func (r *passwordResetRepository) SaveResetToken(ctx context.Context, token string, userID uuid.UUID) error {
	key := fmt.Sprintf("password_reset:%s", token)

	if err := r.client.Set(ctx, key, userID.String(), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store password reset token: %w", err)
	}

	return nil
}
