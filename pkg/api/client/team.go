package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"team-showcase.backend/internal/domain/entities"
)

// IdempotencyHeader names the header the server deduplicates submissions by.
const IdempotencyHeader = "Idempotency-Key"

// Health mirrors GET /api/health.
type Health struct {
	Status    string    `json:"status"`
	Store     string    `json:"store"`
	Connected bool      `json:"connected"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports server liveness. A degraded server answers 503 with a health
// body, which is returned without an error.
func (c *Client) Health(ctx context.Context) (Health, error) {
	status, data, err := c.send(ctx, request{method: http.MethodGet, path: "/api/health"})
	if err != nil {
		return Health{}, err
	}
	if status >= http.StatusBadRequest && status != http.StatusServiceUnavailable {
		return Health{}, extractError(status, data)
	}
	var h Health
	if err := decodeJSON(data, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

// Stats returns the dashboard counts.
func (c *Client) Stats(ctx context.Context) (entities.Stats, error) {
	var stats entities.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return entities.Stats{}, err
	}
	return stats, nil
}

// Profile returns the team profile.
func (c *Client) Profile(ctx context.Context) (entities.TeamProfile, error) {
	var profile entities.TeamProfile
	if err := c.do(ctx, http.MethodGet, "/api/team/info", nil, &profile); err != nil {
		return entities.TeamProfile{}, err
	}
	return profile, nil
}

// UpdateProfile sends only the fields present in patch.
func (c *Client) UpdateProfile(ctx context.Context, patch entities.TeamProfilePatch) (entities.TeamProfile, error) {
	var profile entities.TeamProfile
	if err := c.do(ctx, http.MethodPut, "/api/team/info", patch.Fields(), &profile); err != nil {
		return entities.TeamProfile{}, err
	}
	return profile, nil
}

// ListMembers returns active members, or every member when all is set.
func (c *Client) ListMembers(ctx context.Context, all bool) ([]entities.Member, error) {
	path := "/api/team/members"
	if all {
		path += "/all"
	}
	var members []entities.Member
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetMember(ctx context.Context, id uuid.UUID) (entities.Member, error) {
	var member entities.Member
	if err := c.do(ctx, http.MethodGet, memberPath(id), nil, &member); err != nil {
		return entities.Member{}, err
	}
	return member, nil
}

func (c *Client) CreateMember(ctx context.Context, input entities.CreateMemberInput) (entities.Member, error) {
	var member entities.Member
	if err := c.do(ctx, http.MethodPost, "/api/team/members", input, &member); err != nil {
		return entities.Member{}, err
	}
	return member, nil
}

func (c *Client) UpdateMember(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (entities.Member, error) {
	var member entities.Member
	if err := c.do(ctx, http.MethodPut, memberPath(id), patch.Fields(), &member); err != nil {
		return entities.Member{}, err
	}
	return member, nil
}

// DeactivateMember hides a member from the public listing.
func (c *Client) DeactivateMember(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, memberPath(id), nil, nil)
}

// PurgeMember deletes a member permanently.
func (c *Client) PurgeMember(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, memberPath(id)+"/permanent", nil, nil)
}

func (c *Client) ListAchievements(ctx context.Context) ([]entities.Achievement, error) {
	var achievements []entities.Achievement
	if err := c.do(ctx, http.MethodGet, "/api/team/achievements", nil, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) CreateAchievement(ctx context.Context, input entities.CreateAchievementInput) (entities.Achievement, error) {
	var achievement entities.Achievement
	if err := c.do(ctx, http.MethodPost, "/api/team/achievements", input, &achievement); err != nil {
		return entities.Achievement{}, err
	}
	return achievement, nil
}

func (c *Client) UpdateAchievement(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (entities.Achievement, error) {
	var achievement entities.Achievement
	if err := c.do(ctx, http.MethodPut, achievementPath(id), patch.Fields(), &achievement); err != nil {
		return entities.Achievement{}, err
	}
	return achievement, nil
}

func (c *Client) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, achievementPath(id), nil, nil)
}

// ListApplications returns applications, filtered by status when it is not empty.
func (c *Client) ListApplications(ctx context.Context, status string) ([]entities.Application, error) {
	path := "/api/team/applications"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var apps []entities.Application
	if err := c.do(ctx, http.MethodGet, path, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) GetApplication(ctx context.Context, id uuid.UUID) (entities.Application, error) {
	var app entities.Application
	if err := c.do(ctx, http.MethodGet, applicationPath(id), nil, &app); err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (c *Client) ReviewApplication(ctx context.Context, id uuid.UUID, input entities.ReviewApplicationInput) (entities.Application, error) {
	var app entities.Application
	if err := c.do(ctx, http.MethodPatch, applicationPath(id)+"/status", input, &app); err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (c *Client) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, applicationPath(id), nil, nil)
}

// Apply submits a join application under a fresh idempotency key.
func (c *Client) Apply(ctx context.Context, input entities.SubmitApplicationInput) (entities.Application, error) {
	key, err := uuid.NewV7()
	if err != nil {
		return entities.Application{}, fmt.Errorf("generate idempotency key: %w", err)
	}
	return c.ApplyWithKey(ctx, key.String(), input)
}

// ApplyWithKey submits a join application. Resending with the same key replays
// the first response instead of recording a second application.
func (c *Client) ApplyWithKey(ctx context.Context, key string, input entities.SubmitApplicationInput) (entities.Application, error) {
	var app entities.Application
	req := request{
		method:  http.MethodPost,
		path:    "/api/team/apply",
		body:    input,
		headers: map[string]string{IdempotencyHeader: key},
	}
	if err := c.doRequest(ctx, req, &app); err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func memberPath(id uuid.UUID) string {
	return "/api/team/members/" + url.PathEscape(id.String())
}

func achievementPath(id uuid.UUID) string {
	return "/api/team/achievements/" + url.PathEscape(id.String())
}

func applicationPath(id uuid.UUID) string {
	return "/api/team/applications/" + url.PathEscape(id.String())
}
