package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDrinkID       = errors.New("invalid drink id")
	ErrEmptyTitle           = errors.New("drink title is required")
	ErrTitleTooLong         = errors.New("drink title is too long")
	ErrEmptyRecipe          = errors.New("recipe must contain at least one ingredient")
	ErrEmptyIngredientName  = errors.New("ingredient name is required")
	ErrEmptyIngredientColor = errors.New("ingredient color is required")
	ErrInvalidParts         = errors.New("ingredient parts must be positive")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
)
