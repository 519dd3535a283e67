package client

import (
	"context"

	"team-showcase.backend/internal/domain/entities"
)

// Showcase is the read side of the public page. Reads never fail: when the API
// cannot be reached the page still renders from built-in defaults. OnError,
// when set, is told about every fetch that fell back.
type Showcase struct {
	Client  *Client
	OnError func(op string, err error)
}

// NewShowcase wraps c for public page rendering.
func NewShowcase(c *Client) *Showcase {
	return &Showcase{Client: c}
}

func (s *Showcase) report(op string, err error) {
	if s.OnError != nil {
		s.OnError(op, err)
	}
}

// Profile returns the team profile, or the default profile when the fetch fails.
func (s *Showcase) Profile(ctx context.Context) entities.TeamProfile {
	profile, err := s.Client.Profile(ctx)
	if err != nil {
		s.report("profile", err)
		return entities.DefaultTeamProfile()
	}
	return profile
}

// Members returns active members, or none when the fetch fails.
func (s *Showcase) Members(ctx context.Context) []entities.Member {
	members, err := s.Client.ListMembers(ctx, false)
	if err != nil {
		s.report("members", err)
		return []entities.Member{}
	}
	return members
}

// Achievements returns achievements, or none when the fetch fails.
func (s *Showcase) Achievements(ctx context.Context) []entities.Achievement {
	achievements, err := s.Client.ListAchievements(ctx)
	if err != nil {
		s.report("achievements", err)
		return []entities.Achievement{}
	}
	return achievements
}

// Apply submits the join form. Unlike the reads, failures are returned so the
// form can show them.
func (s *Showcase) Apply(ctx context.Context, input entities.SubmitApplicationInput) (entities.Application, error) {
	return s.Client.Apply(ctx, input)
}
