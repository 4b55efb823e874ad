package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/respond"
)

type Input struct {
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Measurement bmi.Input `json:"measurement"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	res, err := bmi.Calculate(input.Measurement)
	if err != nil {
		bmi.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, Meta{Title: input.Title, Subject: input.Subject}, res); err != nil {
		slog.Error("report render failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Report generation error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"bmi-report-%s.pdf\"", uuid.NewString()))
	w.Write(buf.Bytes())
}
