package store

import (
	"github.com/MKhiriev/coffee-shop/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	drinksTable = "drinks"

	columnID     = "id"
	columnTitle  = "title"
	columnRecipe = "recipe"
)

var drinkColumns = []string{columnID, columnTitle, columnRecipe}

// returningDrink is supported by PostgreSQL and by sqlite since 3.35.
const returningDrink = "RETURNING id, title, recipe"

func buildListDrinksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(drinkColumns...).
		From(drinksTable).
		OrderBy(columnID).
		ToSql()
}

func buildGetDrinkQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(drinkColumns...).
		From(drinksTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func buildCreateDrinkQuery(b sq.StatementBuilderType, drink models.Drink) (string, []any, error) {
	return b.Insert(drinksTable).
		Columns(columnTitle, columnRecipe).
		Values(drink.Title, drink.Recipe).
		Suffix(returningDrink).
		ToSql()
}

// buildUpdateDrinkQuery sets only the non-nil fields of update.
func buildUpdateDrinkQuery(b sq.StatementBuilderType, update models.UpdateDrinkRequest) (string, []any, error) {
	query := b.Update(drinksTable)

	if update.Title != nil {
		query = query.Set(columnTitle, *update.Title)
	}
	if update.Recipe != nil {
		query = query.Set(columnRecipe, *update.Recipe)
	}

	return query.
		Where(sq.Eq{columnID: update.ID}).
		Suffix(returningDrink).
		ToSql()
}

func buildDeleteDrinkQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(drinksTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}
