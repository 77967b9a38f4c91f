package handlers

import (
	"errors"
	"net/http"

	"github.com/birdiehq/scorekeeper/middleware"
	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/services"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(rs services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: rs}
}

// CreateRound records a submitted card. Scorers and admins only.
func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	currentUserRole, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user role")
		return
	}
	if currentUserRole != models.RoleAdmin && currentUserRole != models.RoleScorer {
		forbiddenResponse(w, r, "scorer privileges required to record rounds")
		return
	}

	var input services.CreateRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.roundService.CreateRound(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"round": round}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoundHandler) GetRoundByID(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.roundService.GetRoundByID(r.Context(), roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"round": round}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListRounds returns the rounds for a tournament day: GET /rounds?day=FRI.
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		badRequestResponse(w, r, errors.New("day query parameter is required"))
		return
	}

	rounds, err := h.roundService.ListRoundsByDay(r.Context(), models.TournamentDay(day))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"rounds": rounds}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoundHandler) ListPlayerRounds(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rounds, err := h.roundService.ListRoundsByPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"rounds": rounds}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
