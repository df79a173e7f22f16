package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDrinkRequest_Normalized(t *testing.T) {
	req := CreateDrinkRequest{Title: "  Water\t", Recipe: Recipe{{Name: "water", Color: "blue", Parts: 1}}}

	assert.Equal(t, "Water", req.Normalized().Title)
	assert.Equal(t, "Water", req.Drink().Title)
	assert.Equal(t, "  Water\t", req.Title)
}

func TestUpdateDrinkRequest_Normalized(t *testing.T) {
	title := " Tea "
	req := UpdateDrinkRequest{ID: 2, Title: &title}

	got := req.Normalized()

	require.NotNil(t, got.Title)
	assert.Equal(t, "Tea", *got.Title)
	assert.Equal(t, " Tea ", title)
	assert.Nil(t, UpdateDrinkRequest{ID: 2}.Normalized().Title)
}
