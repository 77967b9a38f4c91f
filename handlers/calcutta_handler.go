package handlers

import (
	"errors"
	"net/http"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/services"
)

type CalcuttaHandler struct {
	scorecardService services.ScorecardService
}

func NewCalcuttaHandler(ss services.ScorecardService) *CalcuttaHandler {
	return &CalcuttaHandler{scorecardService: ss}
}

func (h *CalcuttaHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.scorecardService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"team": team}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CalcuttaHandler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.scorecardService.GetAllTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"teams": teams}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CalcuttaHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.scorecardService.DeleteTeam(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetScorecards renders the calcutta view: GET /calcutta/scorecards?day=SAT.
func (h *CalcuttaHandler) GetScorecards(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		badRequestResponse(w, r, errors.New("day query parameter is required"))
		return
	}

	scorecards, err := h.scorecardService.CalcuttaScorecards(r.Context(), models.TournamentDay(day))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"scorecards": scorecards}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
