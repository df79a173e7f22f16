// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Ingredient is a single component of a drink recipe. Parts is the relative
// amount of the ingredient in the cup; Color is used by the client to draw it.
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Recipe is the ordered list of ingredients of a drink.
//
// It decodes from either a JSON array of ingredients or a single ingredient
// object, and is persisted as JSON text.
type Recipe []Ingredient

// Drink is a menu item. Its long form (the full struct) is only shown to
// callers holding the get:drinks-detail permission.
type Drink struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

// ShortIngredient is the public projection of an [Ingredient]: it reveals
// proportions but not names.
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// DrinkShort is the public projection of a [Drink].
type DrinkShort struct {
	ID     int64             `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

// Short returns the public projection of d.
func (d Drink) Short() DrinkShort {
	recipe := make([]ShortIngredient, 0, len(d.Recipe))
	for _, ingredient := range d.Recipe {
		recipe = append(recipe, ShortIngredient{
			Color: ingredient.Color,
			Parts: ingredient.Parts,
		})
	}

	return DrinkShort{
		ID:     d.ID,
		Title:  d.Title,
		Recipe: recipe,
	}
}

// ShortDrinks projects every drink of drinks.
func ShortDrinks(drinks []Drink) []DrinkShort {
	short := make([]DrinkShort, 0, len(drinks))
	for _, d := range drinks {
		short = append(short, d.Short())
	}
	return short
}

// UnmarshalJSON accepts `[{...}, ...]` as well as a bare `{...}`.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = nil
		return nil
	}

	if trimmed[0] == '{' {
		var single Ingredient
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = Recipe{single}
		return nil
	}

	var list []Ingredient
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*r = list
	return nil
}

// Value stores the recipe as JSON text.
func (r Recipe) Value() (driver.Value, error) {
	if r == nil {
		r = Recipe{}
	}

	data, err := json.Marshal([]Ingredient(r))
	if err != nil {
		return nil, fmt.Errorf("error encoding recipe: %w", err)
	}

	return string(data), nil
}

// Scan reads a recipe previously written by [Recipe.Value].
func (r *Recipe) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("unsupported recipe column type")
	}

	if err := r.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("error decoding recipe: %w", err)
	}
	return nil
}
