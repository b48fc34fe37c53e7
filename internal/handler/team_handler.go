package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/study-teams/internal/domain"
	"github.com/bagdasarian/study-teams/internal/service"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), service.CreateTeamInput{
		Name:           req.Name,
		SubjectID:      req.SubjectID,
		LeaderName:     req.LeaderName,
		LeaderEmail:    req.LeaderEmail,
		LeaderTimezone: req.LeaderTimezone,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	team, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	team, err := h.teamService.UpdateDetails(r.Context(), id, req.Name, req.SubjectID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.teamService.DeleteTeam(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if !existed {
		h.handleError(w, domain.NewNotFoundError("team with id "+id))
		return
	}

	writeJSON(w, http.StatusOK, DeleteTeamResponse{Deleted: true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
