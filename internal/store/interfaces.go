package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/coffee-shop/models"
)

// DrinkRepository persists the drinks menu.
type DrinkRepository interface {
	// ListDrinks returns every drink ordered by id. An empty menu is not an
	// error.
	ListDrinks(ctx context.Context) ([]models.Drink, error)
	// GetDrink returns [ErrDrinkNotFound] for an unknown id.
	GetDrink(ctx context.Context, id int64) (models.Drink, error)
	// CreateDrink inserts drink and returns it with the assigned id.
	CreateDrink(ctx context.Context, drink models.Drink) (models.Drink, error)
	// UpdateDrink changes the non-nil fields of update and returns the
	// stored drink.
	UpdateDrink(ctx context.Context, update models.UpdateDrinkRequest) (models.Drink, error)
	// DeleteDrink removes the drink with id.
	DeleteDrink(ctx context.Context, id int64) error
}

// ErrorClassificator knows the error codes of one database driver.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
}
