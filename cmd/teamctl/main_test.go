package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-showcase.backend/internal/config"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/memory"
	"team-showcase.backend/internal/interfaces/http/handlers"
	"team-showcase.backend/internal/interfaces/http/middleware"
	"team-showcase.backend/internal/usecases"
	"team-showcase.backend/pkg/jwt"
	redispkg "team-showcase.backend/pkg/redis"
)

const adminPassword = "teamctl-pw"

// newServer serves the real handlers over a memory store with the admin gate
// enforced and idempotent submissions backed by miniredis.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rc := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	redispkg.SetClient(rc)
	t.Cleanup(func() {
		redispkg.SetClient(nil)
		_ = rc.Close()
	})

	store := memory.NewStore()
	auth := usecases.NewAdminAuthUsecase(config.AdminConfig{Password: adminPassword, AuthRequired: true}, jwt.NewJWTService("teamctl-test", time.Hour), nil)
	admin := middleware.RequireAdmin(auth, true)
	profiles := handlers.NewTeamProfileHandler(usecases.NewTeamProfileUsecase(store.Profiles()))
	members := handlers.NewMemberHandler(usecases.NewMemberUsecase(store.Members()))
	achievements := handlers.NewAchievementHandler(usecases.NewAchievementUsecase(store.Achievements()))
	apps := handlers.NewApplicationHandler(usecases.NewApplicationUsecase(store.Applications()))
	stats := handlers.NewStatsHandler(usecases.NewStatsUsecase(store), nil)
	authHandler := handlers.NewAdminAuthHandler(auth)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", stats.Health)
	api.GET("/stats", stats.GetStats)
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)
	api.GET("/team/info", profiles.GetProfile)
	api.PUT("/team/info", admin, profiles.UpdateProfile)
	api.GET("/team/members", members.ListActiveMembers)
	api.GET("/team/members/all", admin, members.ListAllMembers)
	api.POST("/team/members", admin, members.CreateMember)
	api.PUT("/team/members/:id", admin, members.UpdateMember)
	api.DELETE("/team/members/:id", admin, members.DeleteMember)
	api.DELETE("/team/members/:id/permanent", admin, members.PurgeMember)
	api.GET("/team/achievements", achievements.ListAchievements)
	api.POST("/team/achievements", admin, achievements.CreateAchievement)
	api.PUT("/team/achievements/:id", admin, achievements.UpdateAchievement)
	api.DELETE("/team/achievements/:id", admin, achievements.DeleteAchievement)
	api.POST("/team/apply", middleware.IdempotencyMiddleware(), apps.SubmitApplication)
	api.GET("/team/applications", admin, apps.ListApplications)
	api.PATCH("/team/applications/:id/status", admin, apps.ReviewApplication)
	api.DELETE("/team/applications/:id", admin, apps.DeleteApplication)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// useConfig points the CLI at a throwaway config file and apiURL.
func useConfig(t *testing.T, apiURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teamctl", "config.json")
	t.Setenv("TEAMCTL_CONFIG", path)
	t.Setenv("TEAMCTL_API", apiURL)
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	return runCLIContext(t, context.Background(), args...)
}

func runCLIContext(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func readSaved(t *testing.T, path string) cliConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg cliConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}

// idOf pulls the id printed in parentheses by create commands.
func idOf(t *testing.T, out string) string {
	t.Helper()
	start := strings.LastIndex(out, "(")
	end := strings.LastIndex(out, ")")
	require.True(t, start >= 0 && end > start, "no id in %q", out)
	return out[start+1 : end]
}

func TestRun_Usage(t *testing.T) {
	useConfig(t, "http://127.0.0.1:1")

	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "teamctl login")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command: frobnicate")

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "TEAMCTL_CONFIG")

	code, stdout, _ = runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "dev\n", stdout)
}

func TestRun_UsageErrorsExitTwo(t *testing.T) {
	useConfig(t, "http://127.0.0.1:1")

	cases := [][]string{
		{"members"},
		{"members", "explode"},
		{"members", "update", "-name", "x"},
		{"members", "delete", "-id", "not-a-uuid"},
		{"achievements", "list", "-bogus"},
		{"applications", "review"},
		{"profile", "update"},
		{"health", "-interval", "0s"},
	}
	for _, args := range cases {
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, 2, code, "%v", args)
		assert.Contains(t, stderr, "usage", "%v", args)
	}
}

func TestLogin_SavesTokenAndLogoutClearsIt(t *testing.T) {
	srv := newServer(t)
	path := useConfig(t, srv.URL)

	code, _, stderr := runCLI(t, "login", "-password", "wrong")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	code, stdout, stderr := runCLI(t, "login", "-password", adminPassword)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "✓ Logged in to "+srv.URL)
	saved := readSaved(t, path)
	assert.Equal(t, srv.URL, saved.APIBaseURL)
	assert.NotEmpty(t, saved.AccessToken)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	code, stdout, _ = runCLI(t, "logout")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Logged out")
	assert.Empty(t, readSaved(t, path).AccessToken)

	code, stdout, _ = runCLI(t, "logout")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Not logged in")
}

func TestLogin_PromptsOnTerminal(t *testing.T) {
	srv := newServer(t)
	path := useConfig(t, srv.URL)

	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func() bool { return true }
	readPassword = func() ([]byte, error) { return []byte(adminPassword), nil }

	code, _, stderr := runCLI(t, "login")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Admin password:")
	assert.NotEmpty(t, readSaved(t, path).AccessToken)
}

func TestPanels_RequireLogin(t *testing.T) {
	srv := newServer(t)
	useConfig(t, srv.URL)

	code, _, stderr := runCLI(t, "members", "create", "-name", "Alice", "-role", "Web")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "run 'teamctl login'")
}

func TestPanels_AdminWorkflow(t *testing.T) {
	srv := newServer(t)
	useConfig(t, srv.URL)
	code, _, stderr := runCLI(t, "login", "-password", adminPassword)
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runCLI(t, "profile", "update", "-name", "Night Owls", "-contact-email", "team@example.com")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Night Owls")
	assert.Contains(t, stdout, "team@example.com")
	// untouched fields keep their defaults
	assert.Contains(t, stdout, entities.DefaultTeamProfile().Tagline)

	code, stdout, stderr = runCLI(t, "members", "create", "-name", "Alice", "-role", "Web", "-direction", "browser bugs")
	require.Equal(t, 0, code, stderr)
	aliceID := idOf(t, stdout)

	code, stdout, stderr = runCLI(t, "members", "update", "-id", aliceID, "-active=false")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Member updated: Alice")

	code, stdout, _ = runCLI(t, "members", "list")
	require.Equal(t, 0, code)
	assert.NotContains(t, stdout, "Alice")
	assert.Contains(t, stdout, "✓ 0 member(s)")

	code, stdout, _ = runCLI(t, "members", "list", "-all")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Alice")
	assert.Contains(t, stdout, "false")

	code, stdout, _ = runCLI(t, "members", "purge", "-id", aliceID)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "permanently deleted")

	code, stdout, stderr = runCLI(t, "achievements", "create", "-year", "2024", "-title", "DEF CON CTF", "-award", "Finalist")
	require.Equal(t, 0, code, stderr)
	achID := idOf(t, stdout)

	code, stdout, stderr = runCLI(t, "achievements", "update", "-id", achID, "-award", "3rd place")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "2024 DEF CON CTF")

	code, stdout, _ = runCLI(t, "achievements", "list")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "3rd place")

	code, _, stderr = runCLI(t, "achievements", "create", "-title", "No Year", "-award", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "400")

	code, _, _ = runCLI(t, "achievements", "delete", "-id", achID)
	require.Equal(t, 0, code)
}

func TestApply_AndReview(t *testing.T) {
	srv := newServer(t)
	useConfig(t, srv.URL)

	args := []string{"apply", "-name", "Bob", "-email", "bob@example.com", "-skills", "pwn", "-key", "form-1"}
	code, stdout, stderr := runCLI(t, args...)
	require.Equal(t, 0, code, stderr)
	first := idOf(t, stdout)

	// a retry with the same key replays the first submission
	code, stdout, _ = runCLI(t, args...)
	require.Equal(t, 0, code)
	assert.Equal(t, first, idOf(t, stdout))

	code, _, stderr = runCLI(t, "apply", "-name", "Eve", "-email", "nope", "-skills", "web")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "400")

	code, _, stderr = runCLI(t, "login", "-password", adminPassword)
	require.Equal(t, 0, code, stderr)

	code, stdout, _ = runCLI(t, "applications", "list", "-status", "pending")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "bob@example.com")
	assert.Contains(t, stdout, "✓ 1 application(s)")

	code, stdout, stderr = runCLI(t, "applications", "review", "-id", first, "-status", "approved", "-notes", "welcome")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Application from Bob marked approved")

	code, stdout, _ = runCLI(t, "stats")
	require.Equal(t, 0, code)
	assert.Regexp(t, `Applications\s+1`, stdout)
	assert.Regexp(t, `Pending review\s+0`, stdout)

	code, _, _ = runCLI(t, "applications", "delete", "-id", first)
	require.Equal(t, 0, code)
}

func TestHealth(t *testing.T) {
	srv := newServer(t)
	useConfig(t, srv.URL)

	code, stdout, stderr := runCLI(t, "health")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Server healthy")
}

func TestHealth_WatchStopsOnCancel(t *testing.T) {
	useConfig(t, "http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, _ := runCLIContext(t, ctx, "health", "-watch", "-interval", "10ms")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "interrupted")
	assert.Contains(t, stdout, "Stopped watching")
}

func TestShow_RendersServerContent(t *testing.T) {
	srv := newServer(t)
	useConfig(t, srv.URL)
	code, _, stderr := runCLI(t, "login", "-password", adminPassword)
	require.Equal(t, 0, code, stderr)
	code, _, stderr = runCLI(t, "members", "create", "-name", "Carol", "-role", "Crypto", "-signature", "gl hf")
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runCLI(t, "show")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Members (1)")
	assert.Contains(t, stdout, `Carol, Crypto "gl hf"`)
	assert.Contains(t, stdout, "Achievements (0)")
}

func TestShow_FallsBackWhenServerIsDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()
	useConfig(t, url)

	code, stdout, stderr := runCLI(t, "show")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, entities.DefaultTeamProfile().Name)
	assert.Contains(t, stdout, "Members (0)")
	assert.Contains(t, stderr, "could not load profile, members, achievements")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TEAMCTL_CONFIG", "")
	t.Setenv("TEAMCTL_API", "")
	dir := t.TempDir()
	orig := userConfigDir
	t.Cleanup(func() { userConfigDir = orig })
	userConfigDir = func() (string, error) { return dir, nil }

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001", cfg.APIBaseURL)
	assert.Empty(t, cfg.AccessToken)

	require.NoError(t, saveConfig(cliConfig{APIBaseURL: "http://api.example", AccessToken: "tok"}))
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, cliConfig{APIBaseURL: "http://api.example", AccessToken: "tok"}, cfg)
	assert.FileExists(t, filepath.Join(dir, "teamctl", "config.json"))
}
