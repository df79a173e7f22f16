package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/store"
	"github.com/MKhiriev/coffee-shop/models"
)

type drinkService struct {
	drinkRepository store.DrinkRepository

	logger *logger.Logger
}

func NewDrinkService(drinkRepository store.DrinkRepository, logger *logger.Logger) DrinkService {
	return &drinkService{
		drinkRepository: drinkRepository,
		logger:          logger,
	}
}

func (d *drinkService) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	drinks, err := d.drinkRepository.ListDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing drinks: %w", err)
	}

	if len(drinks) == 0 {
		logger.FromContext(ctx).Debug().Msg("menu is empty")
		return nil, ErrNoDrinks
	}

	return drinks, nil
}

func (d *drinkService) CreateDrink(ctx context.Context, req models.CreateDrinkRequest) (models.Drink, error) {
	drink, err := d.drinkRepository.CreateDrink(ctx, req.Drink())
	if err != nil {
		return models.Drink{}, fmt.Errorf("error creating drink: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("drink_id", drink.ID).Str("title", drink.Title).Msg("drink added to the menu")
	return drink, nil
}

func (d *drinkService) UpdateDrink(ctx context.Context, req models.UpdateDrinkRequest) (models.Drink, error) {
	drink, err := d.drinkRepository.UpdateDrink(ctx, req.Normalized())
	if err != nil {
		return models.Drink{}, fmt.Errorf("error updating drink %d: %w", req.ID, err)
	}

	return drink, nil
}

// DeleteDrink looks the drink up before removing it so that an unknown id is
// reported as ErrDrinkNotFound without touching the table.
func (d *drinkService) DeleteDrink(ctx context.Context, id int64) error {
	drink, err := d.drinkRepository.GetDrink(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding drink %d: %w", id, err)
	}

	if err = d.drinkRepository.DeleteDrink(ctx, id); err != nil {
		return fmt.Errorf("error deleting drink %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("drink_id", id).Str("title", drink.Title).Msg("drink removed from the menu")
	return nil
}
