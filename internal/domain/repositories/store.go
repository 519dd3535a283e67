package repositories

import "context"

// Store groups the repositories of one persistence backend. Memory, relational and
// document backends all satisfy it and are picked by configuration.
type Store interface {
	Profiles() TeamProfileRepository
	Members() MemberRepository
	Achievements() AchievementRepository
	Applications() ApplicationRepository

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Name is the backend identifier reported by the health endpoint.
	Name() string
	Close(ctx context.Context) error
}
