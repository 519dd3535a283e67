package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamProfile is the single descriptive record for the team.
type TeamProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Founded      string    `json:"founded"`
	Logo         string    `json:"logo"`
	Tagline      string    `json:"tagline"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultTeamProfile is used when the profile is read before anyone has written it,
// and by public clients when the API cannot be reached.
func DefaultTeamProfile() TeamProfile {
	return TeamProfile{
		Name:         "YXOR Team",
		Description:  "YXOR is a security research team focused on vulnerability research and CTF competitions.",
		Founded:      "2020",
		Logo:         "https://ui-avatars.com/api/?name=YXOR&background=0ea5e9",
		Tagline:      "Security research · CTF competition",
		ContactEmail: "join@yxorteam.com",
	}
}

type TeamProfilePatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Founded      *string `json:"founded"`
	Logo         *string `json:"logo"`
	Tagline      *string `json:"tagline"`
	ContactEmail *string `json:"contactEmail"`
}

func (p TeamProfilePatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

func (p TeamProfilePatch) Fields() map[string]any {
	fields := make(map[string]any)
	putString(fields, "name", p.Name)
	putString(fields, "description", p.Description)
	putString(fields, "founded", p.Founded)
	putString(fields, "logo", p.Logo)
	putString(fields, "tagline", p.Tagline)
	putString(fields, "contactEmail", p.ContactEmail)
	return fields
}

func (p TeamProfilePatch) Apply(t *TeamProfile) {
	applyString(&t.Name, p.Name)
	applyString(&t.Description, p.Description)
	applyString(&t.Founded, p.Founded)
	applyString(&t.Logo, p.Logo)
	applyString(&t.Tagline, p.Tagline)
	applyString(&t.ContactEmail, p.ContactEmail)
}
