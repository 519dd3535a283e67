package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"team-showcase.backend/internal/config"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/pkg/crypto"
	"team-showcase.backend/pkg/jwt"
	"team-showcase.backend/pkg/redis"
)

// AdminSessionStore keeps server-side admin sessions so a logout can revoke a token
// before it expires. *redis.SessionStore satisfies it.
type AdminSessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AdminSession describes the session behind a valid admin token.
type AdminSession struct {
	Role      string    `json:"role"`
	Tracked   bool      `json:"tracked"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var generateSessionID = crypto.GenerateSessionID

// AdminAuthUsecase checks the shared admin password and issues tokens.
type AdminAuthUsecase struct {
	cfg        config.AdminConfig
	jwtService *jwt.JWTService
	sessions   AdminSessionStore
	now        func() time.Time
}

// NewAdminAuthUsecase creates a new admin auth usecase. sessions may be nil, in which
// case tokens stay valid until they expire.
func NewAdminAuthUsecase(cfg config.AdminConfig, jwtService *jwt.JWTService, sessions AdminSessionStore) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		cfg:        cfg,
		jwtService: jwtService,
		sessions:   sessions,
		now:        time.Now,
	}
}

// AuthRequired reports whether admin routes are gated.
func (u *AdminAuthUsecase) AuthRequired() bool {
	return u.cfg.AuthRequired
}

func (u *AdminAuthUsecase) checkPassword(password string) bool {
	if u.cfg.PasswordHash != "" {
		return crypto.CheckPassword(password, u.cfg.PasswordHash)
	}
	return crypto.EqualSecret(password, u.cfg.Password)
}

// Login exchanges the admin password for an access token.
func (u *AdminAuthUsecase) Login(ctx context.Context, input *entities.AdminLoginInput, clientIP string) (*jwt.AccessToken, error) {
	if strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.BadRequest("password is required")
	}
	if !u.checkPassword(input.Password) {
		return nil, domainerrors.Unauthorized("invalid password")
	}

	sessionID := ""
	if u.sessions != nil {
		id, err := generateSessionID()
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		now := u.now()
		data := &redis.SessionData{
			Role:      jwt.RoleAdmin,
			ClientIP:  clientIP,
			IssuedAt:  now,
			ExpiresAt: now.Add(u.jwtService.AccessExpiry()),
		}
		if err := u.sessions.CreateSession(ctx, id, data, u.jwtService.AccessExpiry()); err != nil {
			return nil, domainerrors.Internal("failed to create session", err)
		}
		sessionID = id
	}

	token, err := u.jwtService.IssueToken(sessionID, jwt.RoleAdmin)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return token, nil
}

// Authenticate validates an admin bearer token and, when sessions are tracked,
// that its session has not been revoked.
func (u *AdminAuthUsecase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, domainerrors.Unauthorized("authorization required")
	}
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.Unauthorized("token has expired")
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}
	if claims.Role != jwt.RoleAdmin {
		return nil, domainerrors.Unauthorized("admin role required")
	}

	if u.sessions != nil {
		if claims.SessionID == "" {
			return nil, domainerrors.Unauthorized("session required")
		}
		if _, err := u.sessions.GetSession(ctx, claims.SessionID); err != nil {
			if errors.Is(err, redis.ErrSessionNotFound) {
				return nil, domainerrors.Unauthorized("session expired or revoked")
			}
			return nil, domainerrors.Internal("failed to load session", err)
		}
	}
	return claims, nil
}

// Session reports the role and lifetime of the session behind claims.
func (u *AdminAuthUsecase) Session(ctx context.Context, claims *jwt.Claims) (*AdminSession, error) {
	out := &AdminSession{Role: claims.Role}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	if u.sessions == nil || claims.SessionID == "" {
		return out, nil
	}

	data, err := u.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, domainerrors.Unauthorized("session expired or revoked")
		}
		return nil, domainerrors.Internal("failed to load session", err)
	}
	out.Tracked = true
	out.IssuedAt = data.IssuedAt
	out.ExpiresAt = data.ExpiresAt
	return out, nil
}

// Logout revokes the session behind token. Without a session store it only validates the token.
func (u *AdminAuthUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if u.sessions == nil || claims.SessionID == "" {
		return nil
	}
	if err := u.sessions.DeleteSession(ctx, claims.SessionID); err != nil {
		return domainerrors.Internal("failed to revoke session", err)
	}
	return nil
}
