package share

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/calc/export"
	"Metrica/internal/respond"
)

type Handler struct {
	Signer *Signer
	TTL    time.Duration
}

type Link struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input bmi.Input
	if err := bmi.DecodeInput(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	res, err := bmi.Calculate(input)
	if err != nil {
		bmi.WriteError(w, err)
		return
	}
	token, exp, err := h.Signer.Sign(export.FromResult(res, h.Signer.now()), h.TTL)
	if err != nil {
		slog.Error("share token", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Share error", nil)
		return
	}
	respond.JSON(w, http.StatusCreated, Link{Token: token, URL: "/api/share/" + token, ExpiresAt: exp.UTC()})
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Signer.Parse(mux.Vars(r)["token"])
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid share token", err)
		return
	}
	respond.JSON(w, http.StatusOK, rec)
}
