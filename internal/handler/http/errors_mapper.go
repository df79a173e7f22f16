package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/coffee-shop/internal/app"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/service"
	"github.com/MKhiriev/coffee-shop/internal/store"
	"github.com/MKhiriev/coffee-shop/internal/utils"
	"github.com/MKhiriev/coffee-shop/internal/validators"
	"github.com/MKhiriev/coffee-shop/models"
)

// errorStatuses is checked in order: an invalid id is wrapped together with
// service.ErrInvalidDataProvided and must resolve to 404 first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidDrinkIDParam, http.StatusNotFound},
	{validators.ErrInvalidDrinkID, http.StatusNotFound},
	{store.ErrDrinkNotFound, http.StatusNotFound},
	{service.ErrNoDrinks, http.StatusNotFound},

	{ErrDecodingRequestBody, http.StatusUnprocessableEntity},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},
	{store.ErrDrinkTitleExists, http.StatusUnprocessableEntity},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

var statusMessages = map[int]string{
	http.StatusNotFound:            app.MsgResourceNotFound,
	http.StatusUnprocessableEntity: app.MsgUnprocessable,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse resolves err into the status code and body sent to the
// caller. Authentication failures carry their own status and description.
func errorResponse(err error) (int, models.ErrorResponse) {
	if authErr, ok := service.AsAuthError(err); ok {
		return authErr.StatusCode, models.NewErrorResponse(authErr.StatusCode, authErr.Description)
	}

	status := statusFromError(err)
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}

	return status, models.NewErrorResponse(status, message)
}

// writeError logs err with the request-scoped logger and writes the JSON
// error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, body, status)
}

// notFound answers every path and method the API does not serve.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NewErrorResponse(http.StatusNotFound, app.MsgResourceNotFound), http.StatusNotFound)
}
