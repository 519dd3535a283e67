package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

type profileBody struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	Founded      *flexibleString `json:"founded"`
	Logo         *string         `json:"logo"`
	Tagline      *string         `json:"tagline"`
	ContactEmail *string         `json:"contactEmail"`
}

func (b profileBody) patch() entities.TeamProfilePatch {
	return entities.TeamProfilePatch{
		Name:         b.Name,
		Description:  b.Description,
		Founded:      b.Founded.stringPtr(),
		Logo:         b.Logo,
		Tagline:      b.Tagline,
		ContactEmail: b.ContactEmail,
	}
}

type TeamProfileHandler struct {
	profileUsecase *usecases.TeamProfileUsecase
}

func NewTeamProfileHandler(profileUsecase *usecases.TeamProfileUsecase) *TeamProfileHandler {
	return &TeamProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile returns the team profile, creating it on first read.
// GET /api/team/info
func (h *TeamProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUsecase.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile overwrites the fields present in the body.
// PUT /api/team/info
func (h *TeamProfileHandler) UpdateProfile(c *gin.Context) {
	var body profileBody
	if err := bindBody(c, fieldmap.Profile, &body); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(c.Request.Context(), body.patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Team profile updated", profile)
}
