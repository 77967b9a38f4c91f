package handlers

import (
	"errors"
	"net/http"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

// GetLeaderboard serves GET /leaderboard?division=A[&day=FRI].
// Without a day it returns standings for every playable day.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	if division == "" {
		badRequestResponse(w, r, errors.New("division query parameter is required"))
		return
	}

	day := r.URL.Query().Get("day")
	if day == "" {
		standings, err := h.leaderboardService.StandingsAllDays(r.Context(), models.Division(division))
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		response := jsonResponse{"standings": standings}
		if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	standings, err := h.leaderboardService.Standings(r.Context(), models.TournamentDay(day), models.Division(division))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"standings": standings}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
