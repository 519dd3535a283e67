package entities

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Signature string    `json:"signature"`
	Blog      string    `json:"blog"`
	Direction string    `json:"direction"`
	IsActive  bool      `json:"isActive"`
	JoinDate  time.Time `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberFilter narrows member listings. The zero value lists everyone.
type MemberFilter struct {
	ActiveOnly bool
}

// MemberPatch carries a partial member update; nil fields are left untouched.
type MemberPatch struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Avatar    *string `json:"avatar"`
	Signature *string `json:"signature"`
	Blog      *string `json:"blog"`
	Direction *string `json:"direction"`
	IsActive  *bool   `json:"isActive"`
}

func (p MemberPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the present fields keyed by their wire names.
func (p MemberPatch) Fields() map[string]any {
	fields := make(map[string]any)
	putString(fields, "name", p.Name)
	putString(fields, "role", p.Role)
	putString(fields, "avatar", p.Avatar)
	putString(fields, "signature", p.Signature)
	putString(fields, "blog", p.Blog)
	putString(fields, "direction", p.Direction)
	if p.IsActive != nil {
		fields["isActive"] = *p.IsActive
	}
	return fields
}

func (p MemberPatch) Apply(m *Member) {
	applyString(&m.Name, p.Name)
	applyString(&m.Role, p.Role)
	applyString(&m.Avatar, p.Avatar)
	applyString(&m.Signature, p.Signature)
	applyString(&m.Blog, p.Blog)
	applyString(&m.Direction, p.Direction)
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}
