package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"team-showcase.backend/internal/config"
	"team-showcase.backend/internal/domain/repositories"
	"team-showcase.backend/internal/infrastructure/memory"
	"team-showcase.backend/internal/interfaces/http/middleware"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
	"team-showcase.backend/pkg/jwt"
)

type testServer struct {
	router *gin.Engine
	store  repositories.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, memory.NewStore(), config.AdminConfig{Password: "admin123"})
}

func newTestServerWith(t *testing.T, store repositories.Store, adminCfg config.AdminConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	response.Configure(config.EnvelopeData, false)
	t.Cleanup(func() { response.Configure(config.EnvelopeData, false) })

	profiles := NewTeamProfileHandler(usecases.NewTeamProfileUsecase(store.Profiles()))
	members := NewMemberHandler(usecases.NewMemberUsecase(store.Members()))
	achievements := NewAchievementHandler(usecases.NewAchievementUsecase(store.Achievements()))
	applications := NewApplicationHandler(usecases.NewApplicationUsecase(store.Applications()))
	stats := NewStatsHandler(usecases.NewStatsUsecase(store), []Endpoint{{Method: "GET", Path: "/api/health", Description: "health"}})
	authUsecase := usecases.NewAdminAuthUsecase(adminCfg, jwt.NewJWTService("handler-test", time.Hour), nil)
	auth := NewAdminAuthHandler(authUsecase)
	admin := middleware.RequireAdmin(authUsecase, adminCfg.AuthRequired)

	r := gin.New()
	r.Use(middleware.BodyLimitMiddleware(1 << 10))
	api := r.Group("/api")
	api.GET("", stats.Index)
	api.GET("/health", stats.Health)
	api.GET("/stats", stats.GetStats)

	api.POST("/admin/login", auth.Login)
	api.POST("/admin/logout", auth.Logout)
	api.GET("/admin/session", middleware.RequireAdmin(authUsecase, true), auth.Session)

	team := api.Group("/team")
	team.GET("/info", profiles.GetProfile)
	team.PUT("/info", admin, profiles.UpdateProfile)
	team.GET("/members", members.ListActiveMembers)
	team.GET("/members/all", admin, members.ListAllMembers)
	team.GET("/members/:id", members.GetMember)
	team.POST("/members", admin, members.CreateMember)
	team.PUT("/members/:id", admin, members.UpdateMember)
	team.DELETE("/members/:id", admin, members.DeleteMember)
	team.DELETE("/members/:id/permanent", admin, members.PurgeMember)
	team.GET("/achievements", achievements.ListAchievements)
	team.GET("/achievements/:id", achievements.GetAchievement)
	team.POST("/achievements", admin, achievements.CreateAchievement)
	team.PUT("/achievements/:id", admin, achievements.UpdateAchievement)
	team.DELETE("/achievements/:id", admin, achievements.DeleteAchievement)
	team.GET("/applications", admin, applications.ListApplications)
	team.GET("/applications/:id", admin, applications.GetApplication)
	team.POST("/apply", applications.SubmitApplication)
	team.PATCH("/applications/:id/status", admin, applications.ReviewApplication)
	team.DELETE("/applications/:id", admin, applications.DeleteApplication)

	return &testServer{router: r, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// data decodes the "data" member of an enveloped response into out.
func data(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out), w.Body.String())
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
