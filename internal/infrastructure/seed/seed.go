// Package seed loads the demo team used by fresh installs and the mock backend.
package seed

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/domain/repositories"
)

type memberSeed struct {
	name, role, color, signature, blog, direction string
}

var demoMembers = []memberSeed{
	{"Zhang San", "Web Security", "0D8ABC", "Whoever finds the bug is the real artist", "https://example.com/blog1", "Web security research, PHP/Python bug hunting"},
	{"Li Si", "Binary Security", "7C3AED", "Reversing is another way to understand the world", "https://example.com/blog2", "Reverse engineering, PWN write-ups"},
	{"Wang Wu", "Cryptography", "059669", "Cracking the hardest puzzles with mathematics", "https://example.com/blog3", "Cryptanalysis, number theory and discrete maths"},
	{"Zhao Liu", "Misc", "DC2626", "Hiding information is where art meets science", "https://example.com/blog4", "Steganalysis, forensics"},
}

var demoAchievements = []entities.Achievement{
	{Year: 2024, Title: "National Collegiate CTF League", Award: "Champion", Description: "First place in the national collegiate CTF league"},
	{Year: 2023, Title: "DEF CON CTF Global Top 16", Award: "Top 16", Description: "Competed in the world's premier security contest"},
	{Year: 2023, Title: "China CTF League", Award: "First Prize", Description: "Highest domestic CTF honour"},
	{Year: 2022, Title: "HITB CTF Best Innovation", Award: "Best Innovation", Description: "Recognised for an original solving approach"},
}

// Result reports how many records Apply inserted.
type Result struct {
	Profile      bool
	Members      int
	Achievements int
}

// Apply fills empty collections with demo data. Collections that already hold
// records are left alone, so running it on every boot is safe.
func Apply(ctx context.Context, store repositories.Store) (Result, error) {
	var res Result

	if _, err := store.Profiles().GetOrCreate(ctx, entities.DefaultTeamProfile()); err != nil {
		return res, fmt.Errorf("seed profile: %w", err)
	}
	res.Profile = true

	members, err := store.Members().List(ctx, entities.MemberFilter{})
	if err != nil {
		return res, fmt.Errorf("seed members: %w", err)
	}
	if len(members) == 0 {
		now := time.Now()
		for i, s := range demoMembers {
			// Stagger join dates so the newest-first order matches the list order.
			joined := now.Add(-time.Duration(i) * time.Minute)
			m := &entities.Member{
				Name:      s.name,
				Role:      s.role,
				Avatar:    avatarURL(s.name, s.color),
				Signature: s.signature,
				Blog:      s.blog,
				Direction: s.direction,
				IsActive:  true,
				JoinDate:  joined,
				CreatedAt: joined,
				UpdatedAt: joined,
			}
			if err := store.Members().Create(ctx, m); err != nil {
				return res, fmt.Errorf("seed member %q: %w", s.name, err)
			}
			res.Members++
		}
	}

	achievements, err := store.Achievements().List(ctx)
	if err != nil {
		return res, fmt.Errorf("seed achievements: %w", err)
	}
	if len(achievements) == 0 {
		now := time.Now()
		for i := range demoAchievements {
			a := demoAchievements[i]
			a.CreatedAt = now.Add(-time.Duration(i) * time.Second)
			a.UpdatedAt = a.CreatedAt
			if err := store.Achievements().Create(ctx, &a); err != nil {
				return res, fmt.Errorf("seed achievement %q: %w", a.Title, err)
			}
			res.Achievements++
		}
	}

	return res, nil
}

func avatarURL(name, background string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", background)
	q.Set("color", "fff")
	q.Set("bold", "true")
	return "https://ui-avatars.com/api/?" + q.Encode()
}
