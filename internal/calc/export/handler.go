package export

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/respond"
)

type Handler struct {
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Export calculates the submitted measurement and returns the exchange
// record in the format given by the "format" query parameter.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Unsupported format", err)
		return
	}
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
	out, err := Encode(FromResult(res, h.now()), format)
	if err != nil {
		slog.Error("export encode failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Export error", nil)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Write(out)
}

// IsSerialization reports whether err is a decode or encode failure.
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}
