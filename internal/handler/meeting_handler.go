package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
)

func (h *Handler) ScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req ScheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "INVALID_ARGUMENT",
			Message: "startTime must be RFC3339",
		})
		return
	}

	team, err := h.teamService.ScheduleMeeting(r.Context(), id, req.Topic, startTime, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

// VerifyMeetingAccess отдает только ссылку на встречу, без остальных полей команды
func (h *Handler) VerifyMeetingAccess(w http.ResponseWriter, r *http.Request) {
	var req VerifyMeetingAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	if req.TeamID == "" || req.MeetingID == "" || req.Email == "" {
		h.handleError(w, domain.ErrInvalidArgument)
		return
	}

	joinURL, err := h.teamService.VerifyMeetingAccess(r.Context(), req.TeamID, req.MeetingID, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, VerifyMeetingAccessResponse{JoinURL: joinURL})
}
