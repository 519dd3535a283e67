package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/interfaces/http/middleware"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

type AdminAuthHandler struct {
	authUsecase *usecases.AdminAuthUsecase
}

func NewAdminAuthHandler(authUsecase *usecases.AdminAuthUsecase) *AdminAuthHandler {
	return &AdminAuthHandler{authUsecase: authUsecase}
}

// Login exchanges the admin password for a bearer token.
// POST /api/admin/login
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var input entities.AdminLoginInput
	if err := bindBody(c, nil, &input); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, token)
}

// Logout revokes the session behind the bearer token.
// POST /api/admin/logout
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Logged out", gin.H{"loggedOut": true})
}

// Session reports the role and expiry of the caller's session.
// GET /api/admin/session
func (h *AdminAuthHandler) Session(c *gin.Context) {
	claims, ok := middleware.AdminClaims(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authorization required"))
		return
	}
	session, err := h.authUsecase.Session(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, session)
}
