package models

// DrinksResponse carries drinks in their long form. It is returned by
// GET /drinks-detail, POST /drinks and PATCH /drinks/{id}; the latter two
// wrap the single affected drink in a one-element list and add a Message.
type DrinksResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Drinks  []Drink `json:"drinks"`
}

// ShortDrinksResponse is returned by the public GET /drinks.
type ShortDrinksResponse struct {
	Success bool         `json:"success"`
	Drinks  []DrinkShort `json:"drinks"`
}

// DeleteDrinkResponse is returned by DELETE /drinks/{id}; Delete is the id
// of the removed drink.
type DeleteDrinkResponse struct {
	Success bool  `json:"success"`
	Delete  int64 `json:"delete"`
}

// ErrorResponse is the body of every failed API call. Error repeats the
// HTTP status code.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds a failed-call body for status.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
