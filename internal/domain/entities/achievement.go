package entities

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Year        int       `json:"year"`
	Title       string    `json:"title"`
	Award       string    `json:"award"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AchievementPatch struct {
	Year        *int    `json:"year"`
	Title       *string `json:"title"`
	Award       *string `json:"award"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

func (p AchievementPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

func (p AchievementPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Year != nil {
		fields["year"] = *p.Year
	}
	putString(fields, "title", p.Title)
	putString(fields, "award", p.Award)
	putString(fields, "description", p.Description)
	putString(fields, "location", p.Location)
	return fields
}

func (p AchievementPatch) Apply(a *Achievement) {
	if p.Year != nil {
		a.Year = *p.Year
	}
	applyString(&a.Title, p.Title)
	applyString(&a.Award, p.Award)
	applyString(&a.Description, p.Description)
	applyString(&a.Location, p.Location)
}
