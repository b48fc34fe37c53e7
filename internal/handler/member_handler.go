package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/study-teams/internal/domain"
)

func (h *Handler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req JoinTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.JoinTeam(r.Context(), id, req.Name, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

// RemoveMember принимает email в теле запроса
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.RemoveMember(r.Context(), id, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateTimezoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.UpdateTimezone(r.Context(), id, req.Email, req.Timezone)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
