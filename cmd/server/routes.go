package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	profileHandler     *handlers.TeamProfileHandler
	memberHandler      *handlers.MemberHandler
	achievementHandler *handlers.AchievementHandler
	applicationHandler *handlers.ApplicationHandler
	statsHandler       *handlers.StatsHandler
	adminAuthHandler   *handlers.AdminAuthHandler
	// adminMiddleware guards mutations and admin listings; it passes everything through
	// unless ADMIN_AUTH_REQUIRED is set.
	adminMiddleware gin.HandlerFunc
	// sessionMiddleware always requires a token.
	sessionMiddleware gin.HandlerFunc
	idempotency       gin.HandlerFunc
}

// apiEndpoints is what GET /api reports.
var apiEndpoints = []handlers.Endpoint{
	{Method: http.MethodGet, Path: "/api/health", Description: "Liveness and store connectivity"},
	{Method: http.MethodGet, Path: "/api/stats", Description: "Member, achievement and application counts"},
	{Method: http.MethodGet, Path: "/api/team/info", Description: "Team profile"},
	{Method: http.MethodPut, Path: "/api/team/info", Description: "Update team profile"},
	{Method: http.MethodGet, Path: "/api/team/members", Description: "Active members"},
	{Method: http.MethodGet, Path: "/api/team/members/all", Description: "All members"},
	{Method: http.MethodGet, Path: "/api/team/members/:id", Description: "Single member"},
	{Method: http.MethodPost, Path: "/api/team/members", Description: "Create member"},
	{Method: http.MethodPut, Path: "/api/team/members/:id", Description: "Update member"},
	{Method: http.MethodDelete, Path: "/api/team/members/:id", Description: "Deactivate member"},
	{Method: http.MethodDelete, Path: "/api/team/members/:id/permanent", Description: "Delete member permanently"},
	{Method: http.MethodGet, Path: "/api/team/achievements", Description: "Achievements, newest year first"},
	{Method: http.MethodGet, Path: "/api/team/achievements/:id", Description: "Single achievement"},
	{Method: http.MethodPost, Path: "/api/team/achievements", Description: "Create achievement"},
	{Method: http.MethodPut, Path: "/api/team/achievements/:id", Description: "Update achievement"},
	{Method: http.MethodDelete, Path: "/api/team/achievements/:id", Description: "Delete achievement"},
	{Method: http.MethodGet, Path: "/api/team/applications", Description: "Applications, optional ?status="},
	{Method: http.MethodGet, Path: "/api/team/applications/:id", Description: "Single application"},
	{Method: http.MethodPost, Path: "/api/team/apply", Description: "Submit application"},
	{Method: http.MethodPatch, Path: "/api/team/applications/:id/status", Description: "Review application"},
	{Method: http.MethodDelete, Path: "/api/team/applications/:id", Description: "Delete application"},
	{Method: http.MethodPost, Path: "/api/admin/login", Description: "Exchange the admin password for a token"},
	{Method: http.MethodPost, Path: "/api/admin/logout", Description: "Revoke the admin session"},
	{Method: http.MethodGet, Path: "/api/admin/session", Description: "Current admin session"},
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		api.GET("", d.statsHandler.Index)
		api.GET("/health", d.statsHandler.Health)
		api.GET("/stats", d.statsHandler.GetStats)

		// Admin auth routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", d.adminAuthHandler.Login)
			admin.POST("/logout", d.adminAuthHandler.Logout)
			admin.GET("/session", d.sessionMiddleware, d.adminAuthHandler.Session)
		}

		team := api.Group("/team")
		{
			team.GET("/info", d.profileHandler.GetProfile)
			team.PUT("/info", d.adminMiddleware, d.profileHandler.UpdateProfile)

			// Member routes (public read)
			team.GET("/members", d.memberHandler.ListActiveMembers)
			team.GET("/members/all", d.adminMiddleware, d.memberHandler.ListAllMembers)
			team.GET("/members/:id", d.memberHandler.GetMember)
			team.POST("/members", d.adminMiddleware, d.memberHandler.CreateMember)
			team.PUT("/members/:id", d.adminMiddleware, d.memberHandler.UpdateMember)
			team.DELETE("/members/:id", d.adminMiddleware, d.memberHandler.DeleteMember)
			team.DELETE("/members/:id/permanent", d.adminMiddleware, d.memberHandler.PurgeMember)

			// Achievement routes (public read)
			team.GET("/achievements", d.achievementHandler.ListAchievements)
			team.GET("/achievements/:id", d.achievementHandler.GetAchievement)
			team.POST("/achievements", d.adminMiddleware, d.achievementHandler.CreateAchievement)
			team.PUT("/achievements/:id", d.adminMiddleware, d.achievementHandler.UpdateAchievement)
			team.DELETE("/achievements/:id", d.adminMiddleware, d.achievementHandler.DeleteAchievement)

			// Application routes (public submit, admin review)
			team.POST("/apply", d.idempotency, d.applicationHandler.SubmitApplication)
			team.GET("/applications", d.adminMiddleware, d.applicationHandler.ListApplications)
			team.GET("/applications/:id", d.adminMiddleware, d.applicationHandler.GetApplication)
			team.PATCH("/applications/:id/status", d.adminMiddleware, d.applicationHandler.ReviewApplication)
			team.DELETE("/applications/:id", d.adminMiddleware, d.applicationHandler.DeleteApplication)
		}
	}
}
