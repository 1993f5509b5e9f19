package redis

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	refreshTokenKeyPrefix  = "refresh_token:"
	passwordResetKeyPrefix = "password_reset:"
)

// resetGrantRecord is the JSON value stored under a password reset key.
type resetGrantRecord struct {
	UserID            uuid.UUID `json:"userId"`
	ResetTokenExpires int64     `json:"resetTokenExpires"` // Unix milliseconds.
}

// sessionRepository implements repository.SessionRepository on Redis strings.
type sessionRepository struct {
	client goredis.Cmdable
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(client *goredis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func refreshTokenKey(userID uuid.UUID) string {
	return refreshTokenKeyPrefix + userID.String()
}

func passwordResetKey(token string) string {
	return passwordResetKeyPrefix + token
}

// StoreRefreshToken overwrites the user's refresh token slot.
func (repo *sessionRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := repo.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err(); err != nil {
		return storeError(err, "failed to store refresh token")
	}

	return nil
}

// GetRefreshToken returns the user's refresh token or ErrRefreshTokenNotFound.
func (repo *sessionRepository) GetRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := repo.client.Get(ctx, refreshTokenKey(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", repository.ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", storeError(err, "failed to load refresh token")
	}

	return token, nil
}

// DeleteRefreshToken clears the user's refresh token slot.
func (repo *sessionRepository) DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error {
	if err := repo.client.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		return storeError(err, "failed to delete refresh token")
	}

	return nil
}

// SaveResetGrant stores the grant as JSON under its token.
func (repo *sessionRepository) SaveResetGrant(ctx context.Context, grant *entity.PasswordResetGrant, ttl time.Duration) error {
	payload, err := json.Marshal(resetGrantRecord{
		UserID:            grant.UserID,
		ResetTokenExpires: grant.ExpiresAt.UnixMilli(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode reset grant")
	}

	if err := repo.client.Set(ctx, passwordResetKey(grant.Token), payload, ttl).Err(); err != nil {
		return storeError(err, "failed to store reset grant")
	}

	return nil
}

// GetResetGrant loads a grant or returns ErrResetGrantNotFound.
func (repo *sessionRepository) GetResetGrant(ctx context.Context, token string) (*entity.PasswordResetGrant, error) {
	payload, err := repo.client.Get(ctx, passwordResetKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrResetGrantNotFound
	}
	if err != nil {
		return nil, storeError(err, "failed to load reset grant")
	}

	var record resetGrantRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode reset grant")
	}

	return &entity.PasswordResetGrant{
		Token:     token,
		UserID:    record.UserID,
		ExpiresAt: time.UnixMilli(record.ResetTokenExpires),
	}, nil
}

// DeleteResetGrant removes a grant.
func (repo *sessionRepository) DeleteResetGrant(ctx context.Context, token string) error {
	if err := repo.client.Del(ctx, passwordResetKey(token)).Err(); err != nil {
		return storeError(err, "failed to delete reset grant")
	}

	return nil
}

func storeError(err error, message string) error {
	return errors.Wrap(domainerrors.ErrSessionStoreFailed.WithDetails(err.Error()), message)
}
