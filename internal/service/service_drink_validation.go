package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/validators"
	"github.com/MKhiriev/coffee-shop/models"
)

type DrinkValidationService struct {
	inner     DrinkService
	validator validators.Validator
}

func NewDrinkValidationService() DrinkServiceWrapper {
	return &DrinkValidationService{
		validator: validators.NewDrinkValidator(),
	}
}

func (v *DrinkValidationService) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	return v.inner.ListDrinks(ctx)
}

func (v *DrinkValidationService) CreateDrink(ctx context.Context, req models.CreateDrinkRequest) (models.Drink, error) {
	req = req.Normalized()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Drink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateDrink(ctx, req)
}

func (v *DrinkValidationService) UpdateDrink(ctx context.Context, req models.UpdateDrinkRequest) (models.Drink, error) {
	req = req.Normalized()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Drink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateDrink(ctx, req)
}

func (v *DrinkValidationService) DeleteDrink(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Drink{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteDrink(ctx, id)
}

func (v *DrinkValidationService) Wrap(wrapper DrinkService) DrinkService {
	v.inner = wrapper
	return v
}
