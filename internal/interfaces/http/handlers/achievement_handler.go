package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

type achievementBody struct {
	Year        *flexibleInt `json:"year"`
	Title       *string      `json:"title"`
	Award       *string      `json:"award"`
	Description *string      `json:"description"`
	Location    *string      `json:"location"`
}

func (b achievementBody) createInput() *entities.CreateAchievementInput {
	input := &entities.CreateAchievementInput{}
	if b.Year != nil {
		input.Year = int(*b.Year)
	}
	input.Title = deref(b.Title)
	input.Award = deref(b.Award)
	input.Description = deref(b.Description)
	input.Location = deref(b.Location)
	return input
}

func (b achievementBody) patch() entities.AchievementPatch {
	return entities.AchievementPatch{
		Year:        b.Year.intPtr(),
		Title:       b.Title,
		Award:       b.Award,
		Description: b.Description,
		Location:    b.Location,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type AchievementHandler struct {
	achievementUsecase *usecases.AchievementUsecase
}

func NewAchievementHandler(achievementUsecase *usecases.AchievementUsecase) *AchievementHandler {
	return &AchievementHandler{achievementUsecase: achievementUsecase}
}

// GET /api/team/achievements
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	items, err := h.achievementUsecase.ListAchievements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GET /api/team/achievements/:id
func (h *AchievementHandler) GetAchievement(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}
	item, err := h.achievementUsecase.GetAchievement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreateAchievement accepts year as a number or a numeric string.
// POST /api/team/achievements
func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	var body achievementBody
	if err := bindBody(c, fieldmap.Achievement, &body); err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.achievementUsecase.CreateAchievement(c.Request.Context(), body.createInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Achievement created", item)
}

// PUT /api/team/achievements/:id
func (h *AchievementHandler) UpdateAchievement(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}
	var body achievementBody
	if err := bindBody(c, fieldmap.Achievement, &body); err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.achievementUsecase.UpdateAchievement(c.Request.Context(), id, body.patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Achievement updated", item)
}

// DELETE /api/team/achievements/:id
func (h *AchievementHandler) DeleteAchievement(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}
	item, err := h.achievementUsecase.DeleteAchievement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Achievement deleted", item)
}
