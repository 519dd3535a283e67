package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

type ApplicationHandler struct {
	applicationUsecase *usecases.ApplicationUsecase
}

func NewApplicationHandler(applicationUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase}
}

// ListApplications returns applications, newest first, optionally narrowed by ?status=.
// GET /api/team/applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	filter, err := usecases.ParseStatusFilter(c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	apps, err := h.applicationUsecase.ListApplications(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// GET /api/team/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseID(c, "application")
	if !ok {
		return
	}
	app, err := h.applicationUsecase.GetApplication(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// SubmitApplication stores a join request from the public form.
// POST /api/team/apply
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var input entities.SubmitApplicationInput
	if err := bindBody(c, fieldmap.Application, &input); err != nil {
		response.Error(c, err)
		return
	}

	app, err := h.applicationUsecase.Submit(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Application submitted, we will get back to you soon",
		"data":      app,
		"timestamp": time.Now().UTC(),
	})
}

// ReviewApplication sets the status and optional review notes.
// PATCH /api/team/applications/:id/status
func (h *ApplicationHandler) ReviewApplication(c *gin.Context) {
	id, ok := parseID(c, "application")
	if !ok {
		return
	}
	var input entities.ReviewApplicationInput
	if err := bindBody(c, fieldmap.Application, &input); err != nil {
		response.Error(c, err)
		return
	}

	app, err := h.applicationUsecase.Review(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Application status updated", app)
}

// DELETE /api/team/applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c, "application")
	if !ok {
		return
	}
	app, err := h.applicationUsecase.DeleteApplication(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Application deleted", app)
}
