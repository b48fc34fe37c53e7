package server

import (
	"net/http"

	"github.com/bagdasarian/study-teams/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /teams", h.CreateTeam)
	mux.HandleFunc("GET /teams", h.ListTeams)
	mux.HandleFunc("GET /teams/{id}", h.GetTeam)
	mux.HandleFunc("PATCH /teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /teams/{id}", h.DeleteTeam)
	mux.HandleFunc("POST /teams/{id}/join", h.JoinTeam)
	mux.HandleFunc("DELETE /teams/{id}/members", h.RemoveMember)
	mux.HandleFunc("PATCH /teams/{id}/timezone", h.UpdateTimezone)
	mux.HandleFunc("POST /teams/{id}/schedule", h.ScheduleMeeting)
	mux.HandleFunc("POST /meetings/join", h.VerifyMeetingAccess)
}
