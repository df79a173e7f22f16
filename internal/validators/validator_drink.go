package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/coffee-shop/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldRecipe = "recipe"

	// FieldChanges requires an update request to change at least one field.
	FieldChanges = "changes"
)

// MaxTitleLength is the maximum number of characters in a drink title.
const MaxTitleLength = 80

// DrinkValidator enforces the menu rules on drinks and drink requests.
type DrinkValidator struct{}

func NewDrinkValidator() Validator {
	return &DrinkValidator{}
}

func (v *DrinkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Drink:
		return v.validateDrink(ctx, value, fields...)
	case *models.Drink:
		return v.validateDrink(ctx, *value, fields...)

	case models.CreateDrinkRequest:
		return v.validateDrink(ctx, value.Drink(), fields...)
	case *models.CreateDrinkRequest:
		return v.validateDrink(ctx, value.Drink(), fields...)

	case models.UpdateDrinkRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateDrinkRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.Recipe:
		return validateRecipe(value)

	default:
		return ErrUnsupportedType
	}
}

// validateDrink checks a drink about to be created. The id is assigned by
// storage, so it is only checked when requested explicitly.
func (v *DrinkValidator) validateDrink(_ context.Context, drink models.Drink, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldRecipe}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if drink.ID <= 0 {
				return ErrInvalidDrinkID
			}
		case FieldTitle:
			if err := validateTitle(drink.Title); err != nil {
				return err
			}
		case FieldRecipe:
			if err := validateRecipe(drink.Recipe); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DrinkValidator) validateUpdateRequest(_ context.Context, update models.UpdateDrinkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldChanges, FieldTitle, FieldRecipe}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				return ErrInvalidDrinkID
			}
		case FieldChanges:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			if err := validateTitle(*update.Title); err != nil {
				return err
			}
		case FieldRecipe:
			if update.Recipe == nil {
				continue
			}
			if err := validateRecipe(*update.Recipe); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateRecipe(recipe models.Recipe) error {
	if len(recipe) == 0 {
		return ErrEmptyRecipe
	}

	for i, ingredient := range recipe {
		var err error
		switch {
		case strings.TrimSpace(ingredient.Name) == "":
			err = ErrEmptyIngredientName
		case strings.TrimSpace(ingredient.Color) == "":
			err = ErrEmptyIngredientColor
		case ingredient.Parts < 1:
			err = ErrInvalidParts
		}
		if err != nil {
			return fmt.Errorf("validation error at ingredient %d: %w", i, err)
		}
	}

	return nil
}
