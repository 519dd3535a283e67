package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"team-showcase.backend/internal/domain/entities"
)

type profileDoc struct {
	ID           string    `bson:"_id"`
	Singleton    bool      `bson:"singleton"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	Founded      string    `bson:"founded"`
	Logo         string    `bson:"logo"`
	Tagline      string    `bson:"tagline"`
	ContactEmail string    `bson:"contact_email"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type memberDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Role      string    `bson:"role"`
	Avatar    string    `bson:"avatar"`
	Signature string    `bson:"signature"`
	Blog      string    `bson:"blog"`
	Direction string    `bson:"direction"`
	IsActive  bool      `bson:"is_active"`
	JoinDate  time.Time `bson:"join_date"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type achievementDoc struct {
	ID          string    `bson:"_id"`
	Year        int       `bson:"year"`
	Title       string    `bson:"title"`
	Award       string    `bson:"award"`
	Description string    `bson:"description"`
	Location    string    `bson:"location"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type applicationDoc struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Email       string     `bson:"email"`
	Phone       string     `bson:"phone"`
	Skills      string     `bson:"skills"`
	Message     string     `bson:"message"`
	Status      string     `bson:"status"`
	SubmittedAt time.Time  `bson:"submitted_at"`
	ReviewedAt  *time.Time `bson:"reviewed_at"`
	ReviewNotes string     `bson:"review_notes"`
}

// parseID tolerates ids written by other tools; a non-UUID _id maps to uuid.Nil.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func profileFromDoc(d *profileDoc) *entities.TeamProfile {
	return &entities.TeamProfile{
		ID:           parseID(d.ID),
		Name:         d.Name,
		Description:  d.Description,
		Founded:      d.Founded,
		Logo:         d.Logo,
		Tagline:      d.Tagline,
		ContactEmail: d.ContactEmail,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func profileToDoc(e *entities.TeamProfile) *profileDoc {
	return &profileDoc{
		ID:           e.ID.String(),
		Singleton:    true,
		Name:         e.Name,
		Description:  e.Description,
		Founded:      e.Founded,
		Logo:         e.Logo,
		Tagline:      e.Tagline,
		ContactEmail: e.ContactEmail,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func memberFromDoc(d *memberDoc) *entities.Member {
	return &entities.Member{
		ID:        parseID(d.ID),
		Name:      d.Name,
		Role:      d.Role,
		Avatar:    d.Avatar,
		Signature: d.Signature,
		Blog:      d.Blog,
		Direction: d.Direction,
		IsActive:  d.IsActive,
		JoinDate:  d.JoinDate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func memberToDoc(e *entities.Member) *memberDoc {
	return &memberDoc{
		ID:        e.ID.String(),
		Name:      e.Name,
		Role:      e.Role,
		Avatar:    e.Avatar,
		Signature: e.Signature,
		Blog:      e.Blog,
		Direction: e.Direction,
		IsActive:  e.IsActive,
		JoinDate:  e.JoinDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func achievementFromDoc(d *achievementDoc) *entities.Achievement {
	return &entities.Achievement{
		ID:          parseID(d.ID),
		Year:        d.Year,
		Title:       d.Title,
		Award:       d.Award,
		Description: d.Description,
		Location:    d.Location,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func achievementToDoc(e *entities.Achievement) *achievementDoc {
	return &achievementDoc{
		ID:          e.ID.String(),
		Year:        e.Year,
		Title:       e.Title,
		Award:       e.Award,
		Description: e.Description,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func applicationFromDoc(d *applicationDoc) *entities.Application {
	return &entities.Application{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Skills:      d.Skills,
		Message:     d.Message,
		Status:      entities.ApplicationStatus(d.Status),
		SubmittedAt: d.SubmittedAt,
		ReviewedAt:  null.TimeFromPtr(d.ReviewedAt),
		ReviewNotes: d.ReviewNotes,
	}
}

func applicationToDoc(e *entities.Application) *applicationDoc {
	return &applicationDoc{
		ID:          e.ID.String(),
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Skills:      e.Skills,
		Message:     e.Message,
		Status:      string(e.Status),
		SubmittedAt: e.SubmittedAt,
		ReviewedAt:  e.ReviewedAt.Ptr(),
		ReviewNotes: e.ReviewNotes,
	}
}
