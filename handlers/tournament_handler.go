package handlers

import (
	"errors"
	"net/http"

	"github.com/cobrasfc/matchday/services"
	"github.com/go-chi/chi/v5"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// ListMatchesHandler handles GET /matches. The first call after a fresh
// deployment (or a reset) generates and persists the schedule.
func (h *TournamentHandler) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	matches, err := h.tournamentService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitScoreHandler handles POST /matches/{matchID}/score.
func (h *TournamentHandler) SubmitScoreHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("missing match id"))
		return
	}

	var input services.SubmitScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.tournamentService.SubmitScore(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler handles GET /standings.
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler handles POST /admin/reset.
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Reset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
