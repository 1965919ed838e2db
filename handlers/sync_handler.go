package handlers

import (
	"errors"
	"net/http"

	"github.com/cobrasfc/matchday/services"
)

type SyncHandler struct {
	syncService services.SyncService
}

func NewSyncHandler(ss services.SyncService) *SyncHandler {
	return &SyncHandler{syncService: ss}
}

// GetHandler handles GET /sync: returns the last-changed marker clients
// compare against their own timestamp.
func (h *SyncHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	lastUpdated, err := h.syncService.LastChanged(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"lastUpdated": lastUpdated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PostHandler handles POST /sync: bumps the marker to a supplied timestamp.
func (h *SyncHandler) PostHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Timestamp int64 `json:"timestamp"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Timestamp <= 0 {
		badRequestResponse(w, r, errors.New("timestamp must be positive"))
		return
	}

	if err := h.syncService.MarkChanged(r.Context(), input.Timestamp); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
