package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/logging"
)

func newAuthEnv(t *testing.T) (*testEnv, AuthService) {
	t.Helper()
	env := newTestEnv(t)
	return env, NewAuthService(env.client, env.repos.Metadata, logging.NewNop())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "officer-1",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestOnlineLogin_CachesSession(t *testing.T) {
	env, auth := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))

	assert.Equal(t, "B-4471", auth.BadgeNumber(ctx))
	access, refresh := env.client.Tokens()
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestOfflineUnlock_RestoresTokens(t *testing.T) {
	env, auth := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))
	require.NoError(t, auth.SetDevicePin(ctx, []byte("4471")))

	// simulate restart: client has no tokens
	env.client.SetTokens("", "")

	require.NoError(t, auth.OfflineUnlock(ctx, []byte("4471")))
	access, refresh := env.client.Tokens()
	assert.Equal(t, "access-token", access)
	assert.Equal(t, "refresh-token", refresh)
}

func TestOfflineUnlock_WrongPin(t *testing.T) {
	_, auth := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))
	require.NoError(t, auth.SetDevicePin(ctx, []byte("4471")))

	err := auth.OfflineUnlock(ctx, []byte("0000"))
	assert.ErrorIs(t, err, common.ErrIncorrectPin)
}

func TestOfflineUnlock_NoCachedSession(t *testing.T) {
	_, auth := newAuthEnv(t)
	err := auth.OfflineUnlock(context.Background(), []byte("4471"))
	assert.ErrorIs(t, err, common.ErrNoCachedSession)
}

func TestOfflineUnlock_SessionWithoutPin(t *testing.T) {
	_, auth := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))

	err := auth.OfflineUnlock(ctx, []byte("4471"))
	assert.ErrorIs(t, err, common.ErrNoCachedSession)
}

func TestSetDevicePin_RequiresSession(t *testing.T) {
	_, auth := newAuthEnv(t)
	err := auth.SetDevicePin(context.Background(), []byte("4471"))
	assert.ErrorIs(t, err, common.ErrNoCachedSession)
}

func TestSessionExpired(t *testing.T) {
	env, auth := newAuthEnv(t)
	ctx := context.Background()

	assert.True(t, auth.SessionExpired(ctx), "no session counts as expired")

	env.client.loginAccess = signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))
	assert.False(t, auth.SessionExpired(ctx))

	env.client.loginAccess = signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))
	assert.True(t, auth.SessionExpired(ctx))
}

func TestLogout_DropsSessionKeepsPin(t *testing.T) {
	env, auth := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, auth.OnlineLogin(ctx, "B-4471", []byte("hunter2")))
	require.NoError(t, auth.SetDevicePin(ctx, []byte("4471")))

	require.NoError(t, auth.Logout(ctx))
	assert.Empty(t, auth.BadgeNumber(ctx))

	access, refresh := env.client.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	// pin survives logout, but unlock needs a cached session
	err := auth.OfflineUnlock(ctx, []byte("4471"))
	assert.ErrorIs(t, err, common.ErrNoCachedSession)
}
