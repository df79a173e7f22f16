package service

import (
	"context"

	"github.com/MKhiriev/coffee-shop/models"
)

// DrinkService manages the drinks menu.
type DrinkService interface {
	// ListDrinks returns the whole menu, or ErrNoDrinks when it is empty.
	ListDrinks(ctx context.Context) ([]models.Drink, error)
	CreateDrink(ctx context.Context, req models.CreateDrinkRequest) (models.Drink, error)
	UpdateDrink(ctx context.Context, req models.UpdateDrinkRequest) (models.Drink, error)
	DeleteDrink(ctx context.Context, id int64) error
}

// AuthService verifies access tokens issued by the identity provider.
// Every error it returns is an [*AuthError].
type AuthService interface {
	// ParseToken extracts the bearer token from an Authorization header
	// value and verifies it.
	ParseToken(ctx context.Context, authorizationHeader string) (*models.Claims, error)
	// CheckPermission reports whether claims grant permission.
	CheckPermission(claims *models.Claims, permission string) error
	// RefreshKeys re-fetches the signing keys of the identity provider.
	RefreshKeys(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// DrinkServiceWrapper defines middleware composition for DrinkService.
// Implementations wrap an existing DrinkService to add behavior such as
// logging or validating.
type DrinkServiceWrapper interface {
	Wrap(DrinkService) DrinkService // returns a decorated DrinkService applying additional behavior
}
