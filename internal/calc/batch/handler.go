package batch

import (
	"encoding/json"
	"net/http"

	"Metrica/internal/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	res, err := Calculate(input.Items)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Batch error", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
