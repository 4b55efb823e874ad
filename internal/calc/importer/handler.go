package importer

import (
	"net/http"

	"Metrica/internal/respond"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "File required", err)
		return
	}
	defer file.Close()

	res, err := Import(file)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid file", err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
