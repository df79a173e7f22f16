package models

import "strings"

// CreateDrinkRequest is the body of POST /drinks.
type CreateDrinkRequest struct {
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

// UpdateDrinkRequest is the body of PATCH /drinks/{id}.
// Only non-nil fields are updated.
type UpdateDrinkRequest struct {
	// ID is taken from the URL path, never from the body.
	ID int64 `json:"-"`

	Title  *string `json:"title,omitempty"`
	Recipe *Recipe `json:"recipe,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateDrinkRequest) IsEmpty() bool {
	return r.Title == nil && r.Recipe == nil
}

// Normalized returns r with surrounding whitespace removed from the title,
// which is the form that is validated and stored.
func (r CreateDrinkRequest) Normalized() CreateDrinkRequest {
	r.Title = strings.TrimSpace(r.Title)
	return r
}

// Normalized returns r with surrounding whitespace removed from the title.
// The receiver's title is left untouched.
func (r UpdateDrinkRequest) Normalized() UpdateDrinkRequest {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
	return r
}

// Drink returns the drink that creating r would produce, without an ID.
func (r CreateDrinkRequest) Drink() Drink {
	return Drink{
		Title:  strings.TrimSpace(r.Title),
		Recipe: r.Recipe,
	}
}
