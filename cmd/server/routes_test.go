package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-showcase.backend/internal/interfaces/http/handlers"
)

func stubRouteDeps(guard, idempotency gin.HandlerFunc) routeDeps {
	pass := func(c *gin.Context) { c.Next() }
	if guard == nil {
		guard = pass
	}
	if idempotency == nil {
		idempotency = pass
	}
	return routeDeps{
		profileHandler:     &handlers.TeamProfileHandler{},
		memberHandler:      &handlers.MemberHandler{},
		achievementHandler: &handlers.AchievementHandler{},
		applicationHandler: &handlers.ApplicationHandler{},
		statsHandler:       handlers.NewStatsHandler(nil, apiEndpoints),
		adminAuthHandler:   &handlers.AdminAuthHandler{},
		adminMiddleware:    guard,
		sessionMiddleware:  guard,
		idempotency:        idempotency,
	}
}

func TestRegisterAPIRoutes_MatchesIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIRoutes(r, stubRouteDeps(nil, nil))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, ep := range apiEndpoints {
		assert.True(t, registered[ep.Method+" "+ep.Path], "%s %s not registered", ep.Method, ep.Path)
	}
	// the index itself is the only route not listed in the index
	assert.Len(t, r.Routes(), len(apiEndpoints)+1)
}

func TestRegisterAPIRoutes_GuardsMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	registerAPIRoutes(r, stubRouteDeps(deny, nil))

	for _, ep := range apiEndpoints {
		public := ep.Method == http.MethodGet && !strings.HasPrefix(ep.Path, "/api/team/applications") &&
			ep.Path != "/api/team/members/all" && ep.Path != "/api/admin/session"
		public = public || ep.Path == "/api/team/apply" || ep.Path == "/api/admin/login" || ep.Path == "/api/admin/logout"
		if public {
			continue
		}
		path := strings.ReplaceAll(ep.Path, ":id", "0190a1b2-0000-7000-8000-000000000001")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(ep.Method, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s should be guarded", ep.Method, ep.Path)
	}
}

func TestRegisterAPIRoutes_IdempotencyOnApplyOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var hits []string
	marker := func(c *gin.Context) {
		hits = append(hits, c.FullPath())
		c.AbortWithStatus(http.StatusAccepted)
	}
	registerAPIRoutes(r, stubRouteDeps(nil, marker))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/team/apply", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"/api/team/apply"}, hits)
}

func TestRegisterAPIRoutes_Index(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIRoutes(r, stubRouteDeps(nil, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/team/apply")
}
