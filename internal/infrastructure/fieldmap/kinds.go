package fieldmap

var Profile = New(map[string]string{
	"id":           "id",
	"name":         "name",
	"description":  "description",
	"founded":      "founded",
	"logo":         "logo",
	"tagline":      "tagline",
	"contactEmail": "contact_email",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
})

var Member = New(map[string]string{
	"id":        "id",
	"name":      "name",
	"role":      "role",
	"avatar":    "avatar",
	"signature": "signature",
	"blog":      "blog",
	"direction": "direction",
	"isActive":  "is_active",
	"joinDate":  "join_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
})

var Achievement = New(map[string]string{
	"id":          "id",
	"year":        "year",
	"title":       "title",
	"award":       "award",
	"description": "description",
	"location":    "location",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
})

var Application = New(map[string]string{
	"id":          "id",
	"name":        "name",
	"email":       "email",
	"phone":       "phone",
	"skills":      "skills",
	"message":     "message",
	"status":      "status",
	"submittedAt": "submitted_at",
	"reviewedAt":  "reviewed_at",
	"reviewNotes": "review_notes",
})
