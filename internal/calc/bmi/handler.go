package bmi

import (
	"log/slog"
	"net/http"

	"Metrica/internal/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := DecodeInput(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

// WriteError maps engine errors onto HTTP responses: validation failures
// are the caller's fault, anything else is ours.
func WriteError(w http.ResponseWriter, err error) {
	if IsValidation(err) {
		respond.Error(w, http.StatusBadRequest, "Invalid measurement", err)
		return
	}
	slog.Error("bmi calculation failed", "error", err)
	respond.Error(w, http.StatusInternalServerError, "Calculation error", nil)
}
