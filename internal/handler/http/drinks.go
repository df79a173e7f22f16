package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/coffee-shop/internal/app"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/utils"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/go-chi/chi/v5"
)

// listDrinks serves the public menu in its short form.
func (h *Handler) listDrinks(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.services.DrinkService.ListDrinks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ShortDrinksResponse{
		Success: true,
		Drinks:  models.ShortDrinks(drinks),
	}, http.StatusOK)
}

// listDrinksDetail serves the menu with full recipes.
func (h *Handler) listDrinksDetail(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.services.DrinkService.ListDrinks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DrinksResponse{
		Success: true,
		Drinks:  drinks,
	}, http.StatusOK)
}

func (h *Handler) createDrink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateDrinkRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrDecodingRequestBody, err))
		return
	}

	drink, err := h.services.DrinkService.CreateDrink(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("drink_id", drink.ID).Str("sub", callerSubject(r)).Msg("drink created")
	utils.WriteJSON(w, models.DrinksResponse{
		Success: true,
		Message: app.MsgNewDrinkAdded,
		Drinks:  []models.Drink{drink},
	}, http.StatusOK)
}

func (h *Handler) updateDrink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := drinkIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateDrinkRequest
	if err = utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrDecodingRequestBody, err))
		return
	}
	req.ID = id

	drink, err := h.services.DrinkService.UpdateDrink(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("drink_id", drink.ID).Str("sub", callerSubject(r)).Msg("drink updated")
	utils.WriteJSON(w, models.DrinksResponse{
		Success: true,
		Message: app.MsgDrinkUpdated,
		Drinks:  []models.Drink{drink},
	}, http.StatusOK)
}

func (h *Handler) deleteDrink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := drinkIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DrinkService.DeleteDrink(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("drink_id", id).Str("sub", callerSubject(r)).Msg("drink deleted")
	utils.WriteJSON(w, models.DeleteDrinkResponse{
		Success: true,
		Delete:  id,
	}, http.StatusOK)
}

func drinkIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDrinkIDParam, raw)
	}
	return id, nil
}

// callerSubject returns the "sub" claim of the verified caller, if any.
func callerSubject(r *http.Request) string {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.Subject
}
