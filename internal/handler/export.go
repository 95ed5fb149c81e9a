package handler

import (
	"mime"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// ExportHandler serves passwords as downloadable text files.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// HandleExport handles POST /api/v1/export requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	export, err := h.service.Export(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.Content))
}
