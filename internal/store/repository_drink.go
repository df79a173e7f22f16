package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/models"
)

// drinkRepository is the SQL implementation of [DrinkRepository] for both
// supported dialects. Dialect differences live in [DB]: the placeholder
// format of its builder and its error classifier.
type drinkRepository struct {
	*DB
	logger *logger.Logger
}

// NewDrinkRepository constructs a [DrinkRepository] backed by db.
func NewDrinkRepository(db *DB, logger *logger.Logger) DrinkRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating drink repository")
	return &drinkRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *drinkRepository) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDrinksQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.ListDrinks").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var drinks []models.Drink
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		drinks = make([]models.Drink, 0, 16)
		for rows.Next() {
			var d models.Drink
			if err := rows.Scan(&d.ID, &d.Title, &d.Recipe); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			drinks = append(drinks, d)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.ListDrinks").Msg("failed to list drinks")
		return nil, err
	}

	return drinks, nil
}

func (r *drinkRepository) GetDrink(ctx context.Context, id int64) (models.Drink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDrinkQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.GetDrink").Msg("failed to build query")
		return models.Drink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	drink, err := r.queryDrink(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.GetDrink").Int64("drink_id", id).Msg("failed to get drink")
		return models.Drink{}, err
	}

	return drink, nil
}

func (r *drinkRepository) CreateDrink(ctx context.Context, drink models.Drink) (models.Drink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateDrinkQuery(r.builder, drink)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.CreateDrink").Msg("failed to build query")
		return models.Drink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryDrink(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.CreateDrink").Str("title", drink.Title).Msg("failed to create drink")
		return models.Drink{}, err
	}

	log.Debug().Str("func", "drinkRepository.CreateDrink").Int64("drink_id", created.ID).Msg("drink created")
	return created, nil
}

func (r *drinkRepository) UpdateDrink(ctx context.Context, update models.UpdateDrinkRequest) (models.Drink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDrinkQuery(r.builder, update)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.UpdateDrink").Int64("drink_id", update.ID).Msg("failed to build query")
		return models.Drink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.queryDrink(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.UpdateDrink").Int64("drink_id", update.ID).Msg("failed to update drink")
		return models.Drink{}, err
	}

	return updated, nil
}

func (r *drinkRepository) DeleteDrink(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDrinkQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.DeleteDrink").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "drinkRepository.DeleteDrink").Int64("drink_id", id).Msg("failed to delete drink")
		return err
	}

	if affected == 0 {
		return ErrDrinkNotFound
	}

	return nil
}

// queryDrink runs a statement that yields at most one drink row (SELECT by
// id, or INSERT/UPDATE ... RETURNING) and maps driver errors to sentinels.
func (r *drinkRepository) queryDrink(ctx context.Context, query string, args []any) (models.Drink, error) {
	var drink models.Drink

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&drink.ID, &drink.Title, &drink.Recipe)
	})

	switch {
	case err == nil:
		return drink, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Drink{}, ErrDrinkNotFound
	case r.errorClassificator.IsUniqueViolation(err):
		return models.Drink{}, ErrDrinkTitleExists
	default:
		return models.Drink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}
