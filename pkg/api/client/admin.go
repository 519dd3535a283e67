package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"team-showcase.backend/pkg/jwt"
)

// Session mirrors GET /api/admin/session.
type Session struct {
	Role      string    `json:"role"`
	Tracked   bool      `json:"tracked"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges the admin password for a bearer token. The client keeps
// using the token for later calls.
func (c *Client) Login(ctx context.Context, password string) (jwt.AccessToken, error) {
	body := map[string]string{"password": password}
	var token jwt.AccessToken
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", body, &token); err != nil {
		return jwt.AccessToken{}, err
	}
	c.token = strings.TrimSpace(token.AccessToken)
	return token, nil
}

// Logout revokes the current token and forgets it.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Session describes the session behind the current token.
func (c *Client) Session(ctx context.Context) (Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodGet, "/api/admin/session", nil, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}
