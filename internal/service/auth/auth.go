// Package auth handles operator sign-in for the admin portal. Sessions live
// in Redis keyed by a v7 UUID; paseto tokens carry the user and session ids.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/repo"
	entuser "github.com/resonara/resonara_backend/internal/repo/user"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
	"github.com/resonara/resonara_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{db: db, rdb: rdb, paseto: paseto, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Burn a verify anyway so lookups and misses take similar time.
			password.Match("", req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
