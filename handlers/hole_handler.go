package handlers

import (
	"net/http"

	"github.com/birdiehq/scorekeeper/services"
)

type HoleHandler struct {
	holeService services.HoleService
}

func NewHoleHandler(hs services.HoleService) *HoleHandler {
	return &HoleHandler{holeService: hs}
}

func (h *HoleHandler) GetAllHoles(w http.ResponseWriter, r *http.Request) {
	holes, err := h.holeService.GetAllHoles(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"holes": holes}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *HoleHandler) UpdateHole(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	holeNumber, err := getIDFromURL(r, "holeNumber")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateHoleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	hole, err := h.holeService.UpdateHole(r.Context(), holeNumber, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"hole": hole}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
