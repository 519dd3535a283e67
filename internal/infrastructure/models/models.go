package models

// All lists every table model, in migration order.
func All() []any {
	return []any{
		&TeamProfile{},
		&Member{},
		&Achievement{},
		&Application{},
	}
}
