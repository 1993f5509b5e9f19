package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepository(t *testing.T) (*miniredis.Miniredis, repository.SessionRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewSessionRepository(client)
}

func TestSessionRepository_RefreshTokenLastWriterWins(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.StoreRefreshToken(ctx, userID, "first", time.Hour))
	require.NoError(t, repo.StoreRefreshToken(ctx, userID, "second", time.Hour))

	token, err := repo.GetRefreshToken(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
	assert.True(t, mr.Exists("refresh_token:"+userID.String()))
}

func TestSessionRepository_RefreshTokenExpires(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.StoreRefreshToken(ctx, userID, "token", 7*24*time.Hour))
	assert.Equal(t, 7*24*time.Hour, mr.TTL("refresh_token:"+userID.String()))

	mr.FastForward(7*24*time.Hour + time.Second)

	_, err := repo.GetRefreshToken(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestSessionRepository_DeleteRefreshTokenIsIdempotent(t *testing.T) {
	_, repo := newTestSessionRepository(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.StoreRefreshToken(ctx, userID, "token", time.Hour))
	require.NoError(t, repo.DeleteRefreshToken(ctx, userID))
	require.NoError(t, repo.DeleteRefreshToken(ctx, userID))

	_, err := repo.GetRefreshToken(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestSessionRepository_ResetGrantRoundTrip(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	ctx := context.Background()
	grant := &entity.PasswordResetGrant{
		Token:     "abc123",
		UserID:    uuid.New(),
		ExpiresAt: time.UnixMilli(time.Now().Add(time.Hour).UnixMilli()),
	}

	require.NoError(t, repo.SaveResetGrant(ctx, grant, time.Hour))

	raw, err := mr.Get("password_reset:abc123")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"userId":"`+grant.UserID.String()+`","resetTokenExpires":`+
			jsonInt(grant.ExpiresAt.UnixMilli())+`}`, raw)

	loaded, err := repo.GetResetGrant(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, grant.UserID, loaded.UserID)
	assert.True(t, grant.ExpiresAt.Equal(loaded.ExpiresAt))

	require.NoError(t, repo.DeleteResetGrant(ctx, "abc123"))
	_, err = repo.GetResetGrant(ctx, "abc123")
	assert.ErrorIs(t, err, repository.ErrResetGrantNotFound)
}

func TestSessionRepository_ResetGrantTTL(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveResetGrant(ctx, &entity.PasswordResetGrant{
		Token:     "ttl",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, time.Hour))

	mr.FastForward(time.Hour + time.Second)

	_, err := repo.GetResetGrant(ctx, "ttl")
	assert.ErrorIs(t, err, repository.ErrResetGrantNotFound)
}

func TestSessionRepository_StoreFailure(t *testing.T) {
	mr, repo := newTestSessionRepository(t)
	mr.Close()

	err := repo.StoreRefreshToken(context.Background(), uuid.New(), "token", time.Hour)
	assert.ErrorIs(t, err, domainerrors.ErrSessionStoreFailed)
}

func jsonInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
