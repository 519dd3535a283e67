package entities

// CreateMemberInput is the body of a member creation request.
type CreateMemberInput struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	Signature string `json:"signature"`
	Blog      string `json:"blog"`
	Direction string `json:"direction"`
}

// CreateAchievementInput is the body of an achievement creation request.
type CreateAchievementInput struct {
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Award       string `json:"award"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// SubmitApplicationInput is what a visitor sends from the join form.
type SubmitApplicationInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Skills  string `json:"skills"`
	Message string `json:"message"`
}

// ReviewApplicationInput moves an application to Status.
type ReviewApplicationInput struct {
	Status      string  `json:"status"`
	ReviewNotes *string `json:"reviewNotes"`
}

// AdminLoginInput carries the shared admin password.
type AdminLoginInput struct {
	Password string `json:"password"`
}
