package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/gommon/log"
)

// GetImportLogs exposes per-batch ingestion accounting to operators.
func (h *OrderHandler) GetImportLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logs, err := h.Usecase.GetImportLogs(r.Context())
	if err != nil {
		log.Errorf("[GetImportLogs] Fetch failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get import logs")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   logs,
	})
}
