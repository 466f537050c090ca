package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mantisworks/mantis-field/internal/client/client"
	"github.com/mantisworks/mantis-field/internal/client/repositories/metadata"
	"github.com/mantisworks/mantis-field/internal/common"
	"github.com/mantisworks/mantis-field/internal/cryptox"
	"github.com/mantisworks/mantis-field/internal/logging"
)

const (
	sessionKey = "officer_session"
	pinKey     = "device_pin"
)

// cachedSession is what survives an app restart: who logged in and the token
// pair from the last successful online login.
type cachedSession struct {
	BadgeNumber  string `json:"badge_number"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// cachedPin is the offline-unlock verifier. The PIN itself is never stored;
// only an Argon2id-then-SHA-256 digest with its salt.
type cachedPin struct {
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// AuthService manages the officer session. Online login goes through the
// gateway; offline unlock re-opens the cached session against a local PIN so
// an officer in a dead zone can keep recording.
type AuthService interface {
	// OnlineLogin authenticates against the gateway and caches the session.
	OnlineLogin(ctx context.Context, badgeNumber string, password []byte) error

	// OfflineUnlock verifies the device PIN and restores the cached tokens.
	// Returns common.ErrNoCachedSession when no officer ever logged in on
	// this device and common.ErrIncorrectPin on a wrong PIN.
	OfflineUnlock(ctx context.Context, pin []byte) error

	// SetDevicePin (re)sets the offline-unlock PIN. Requires a session.
	SetDevicePin(ctx context.Context, pin []byte) error

	// BadgeNumber returns the cached officer badge, "" when logged out.
	BadgeNumber(ctx context.Context) string

	// SessionExpired reports whether the cached access token is past its
	// expiry claim. An expired session still unlocks offline; the first
	// online call refreshes it.
	SessionExpired(ctx context.Context) bool

	// Logout drops the cached session. The PIN and queue are kept.
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	meta   metadata.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewAuthService(c client.Client, meta metadata.Repository, logger logging.Logger) AuthService {
	return &authService{
		client: c,
		meta:   meta,
		logger: logger.With("module", "auth"),
		now:    time.Now,
	}
}

func (s *authService) OnlineLogin(ctx context.Context, badgeNumber string, password []byte) error {
	if err := s.client.Login(ctx, badgeNumber, password); err != nil {
		return err
	}

	access, refresh := s.client.Tokens()
	if err := s.saveSession(ctx, cachedSession{
		BadgeNumber:  badgeNumber,
		AccessToken:  access,
		RefreshToken: refresh,
	}); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	s.logger.Info(ctx, "officer logged in", "badge", badgeNumber)
	return nil
}

func (s *authService) OfflineUnlock(ctx context.Context, pin []byte) error {
	sess, err := s.loadSession(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return common.ErrNoCachedSession
	}

	rawPin, err := s.meta.Get(ctx, pinKey)
	if err != nil {
		return fmt.Errorf("failed to read device pin: %w", err)
	}
	if rawPin == nil {
		return common.ErrNoCachedSession
	}
	var stored cachedPin
	if err := json.Unmarshal(rawPin, &stored); err != nil {
		return fmt.Errorf("failed to decode device pin: %w", err)
	}

	key := cryptox.DeriveKey(pin, stored.Salt)
	defer common.WipeByteArray(key)
	if subtle.ConstantTimeCompare(cryptox.MakeVerifier(key), stored.Verifier) != 1 {
		return common.ErrIncorrectPin
	}

	s.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	s.logger.Info(ctx, "offline unlock", "badge", sess.BadgeNumber)
	return nil
}

func (s *authService) SetDevicePin(ctx context.Context, pin []byte) error {
	sess, err := s.loadSession(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return common.ErrNoCachedSession
	}

	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveKey(pin, salt)
	defer common.WipeByteArray(key)

	raw, err := json.Marshal(cachedPin{Salt: salt, Verifier: cryptox.MakeVerifier(key)})
	if err != nil {
		return err
	}
	if err := s.meta.Set(ctx, pinKey, raw); err != nil {
		return fmt.Errorf("failed to store device pin: %w", err)
	}

	s.logger.Info(ctx, "device pin set", "badge", sess.BadgeNumber)
	return nil
}

func (s *authService) BadgeNumber(ctx context.Context) string {
	sess, err := s.loadSession(ctx)
	if err != nil || sess == nil {
		return ""
	}
	return sess.BadgeNumber
}

func (s *authService) SessionExpired(ctx context.Context) bool {
	sess, err := s.loadSession(ctx)
	if err != nil || sess == nil {
		return true
	}

	// The expiry claim is read without signature verification; only the
	// gateway can verify, and here the claim is a UX hint, not a gate.
	token, _, err := jwt.NewParser().ParseUnverified(sess.AccessToken, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(s.now())
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.meta.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	s.client.SetTokens("", "")
	s.logger.Info(ctx, "officer logged out")
	return nil
}

func (s *authService) loadSession(ctx context.Context) (*cachedSession, error) {
	raw, err := s.meta.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var sess cachedSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		// A corrupt cache behaves like no cache.
		return nil, errors.Join(common.ErrNoCachedSession, err)
	}
	return &sess, nil
}

func (s *authService) saveSession(ctx context.Context, sess cachedSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.meta.Set(ctx, sessionKey, raw)
}
