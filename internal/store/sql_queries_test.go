// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/coffee-shop/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListDrinksQuery(t *testing.T) {
	query, args, err := buildListDrinksQuery(postgresBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, title, recipe FROM drinks ORDER BY id", query)
}

func Test_buildGetDrinkQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: postgresBuilder, placeholder: "id = $1"},
		{name: "sqlite", builder: sqliteBuilder, placeholder: "id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetDrinkQuery(tt.builder, 7)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM drinks")
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{int64(7)}, args)
		})
	}
}

func Test_buildCreateDrinkQuery(t *testing.T) {
	drink := models.Drink{Title: "milk", Recipe: models.Recipe{{Name: "milk", Color: "white", Parts: 1}}}

	query, args, err := buildCreateDrinkQuery(postgresBuilder, drink)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into drinks")
	assert.Contains(t, q, "$1")
	assert.Contains(t, q, "$2")
	assert.True(t, strings.HasSuffix(query, returningDrink))

	require.Len(t, args, 2)
	assert.Equal(t, "milk", args[0])
	assert.Equal(t, drink.Recipe, args[1])
}

func Test_buildUpdateDrinkQuery(t *testing.T) {
	title := "latte"
	recipe := models.Recipe{{Name: "milk", Color: "white", Parts: 3}}

	tests := []struct {
		name       string
		update     models.UpdateDrinkRequest
		wantSet    []string
		wantNotSet []string
		wantArgs   int
	}{
		{
			name:       "title only",
			update:     models.UpdateDrinkRequest{ID: 1, Title: &title},
			wantSet:    []string{"title = $1"},
			wantNotSet: []string{"recipe ="},
			wantArgs:   2,
		},
		{
			name:       "recipe only",
			update:     models.UpdateDrinkRequest{ID: 1, Recipe: &recipe},
			wantSet:    []string{"recipe = $1"},
			wantNotSet: []string{"title ="},
			wantArgs:   2,
		},
		{
			name:     "both",
			update:   models.UpdateDrinkRequest{ID: 1, Title: &title, Recipe: &recipe},
			wantSet:  []string{"title = $1", "recipe = $2", "id = $3"},
			wantArgs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateDrinkQuery(postgresBuilder, tt.update)
			require.NoError(t, err)

			for _, s := range tt.wantSet {
				assert.Contains(t, query, s)
			}
			for _, s := range tt.wantNotSet {
				assert.NotContains(t, query, s)
			}
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, int64(1), args[len(args)-1])
		})
	}
}

func Test_buildUpdateDrinkQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateDrinkQuery(postgresBuilder, models.UpdateDrinkRequest{ID: 1})
	assert.Error(t, err)
}

func Test_buildDeleteDrinkQuery(t *testing.T) {
	query, args, err := buildDeleteDrinkQuery(sqliteBuilder, 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM drinks WHERE id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}
