package handlers

import (
	"errors"
	"net/http"

	"github.com/cobrasfc/matchday/models"
	"github.com/cobrasfc/matchday/services"
	"github.com/go-chi/chi/v5"
)

const maxCrestSize = 2 << 20 // 2MB

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// ListTeamsHandler handles GET /teams.
func (h *TeamHandler) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateTeamsHandler handles PUT /teams. The whole roster is replaced; team
// identifiers stay stable, only names and players are meant to change.
func (h *TeamHandler) UpdateTeamsHandler(w http.ResponseWriter, r *http.Request) {
	var teams []models.Team
	if err := readJSON(w, r, &teams); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updated, err := h.teamService.UpdateTeams(r.Context(), teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadCrestHandler handles POST /teams/{teamID}/crest (multipart form,
// field "crest").
func (h *TeamHandler) UploadCrestHandler(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errors.New("missing team id"))
		return
	}

	if err := r.ParseMultipartForm(maxCrestSize); err != nil {
		badRequestResponse(w, r, errors.New("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("crest")
	if err != nil {
		badRequestResponse(w, r, errors.New("missing crest file"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	team, err := h.teamService.UploadCrest(r.Context(), teamID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
