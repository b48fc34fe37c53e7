package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/study-teams/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "INVALID_ARGUMENT", "BAD_REQUEST":
		return http.StatusBadRequest
	case "NOT_A_MEMBER", "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND", "MEMBER_NOT_FOUND":
		return http.StatusNotFound
	case "TEAM_FULL", "DUPLICATE_MEMBER", "LEADER_REMOVAL_FORBIDDEN":
		return http.StatusConflict
	case "UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
