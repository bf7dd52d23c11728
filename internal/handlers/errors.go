package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkurbatov/gw-exchange-front/internal/facades"
	"github.com/mkurbatov/gw-exchange-front/internal/services"
)

// ErrorResponse represents an error returned to the client
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Ошибка соединения с сервером
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto an HTTP status. Validation
// failures and backend refusals carry a message the client shows inline;
// anything else is a connectivity problem.
func writeServiceError(w http.ResponseWriter, err error) {
	var backendErr *facades.BackendError

	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Заявка не найдена")
	case errors.Is(err, services.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "Недопустимый статус заявки")
	case errors.Is(err, services.ErrQuoteExpired):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrPayoutBelowMinimum),
		errors.Is(err, services.ErrIncompleteRequest),
		errors.Is(err, services.ErrUnknownDirection):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &backendErr):
		writeError(w, http.StatusBadRequest, backendErr.Message)
	default:
		writeError(w, http.StatusBadGateway, "Ошибка соединения с сервером")
	}
}
