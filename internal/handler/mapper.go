package handler

import (
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
)

func domainMemberToHTTP(member domain.Member) MemberResponse {
	return MemberResponse{
		Name:     member.Name,
		Email:    member.Email,
		Timezone: member.Timezone,
	}
}

func domainMeetingToHTTP(meeting domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:        meeting.ID,
		Topic:     meeting.Topic,
		StartTime: meeting.StartTime.Format(time.RFC3339),
		JoinURL:   meeting.JoinURL,
		CreatedBy: meeting.CreatedBy,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]MemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, domainMemberToHTTP(member))
	}

	meetings := make([]MeetingResponse, 0, len(team.Meetings))
	for _, meeting := range team.Meetings {
		meetings = append(meetings, domainMeetingToHTTP(meeting))
	}

	var createdAt, updatedAt *string
	if !team.CreatedAt.IsZero() {
		createdAtStr := team.CreatedAt.Format(time.RFC3339)
		createdAt = &createdAtStr
	}
	if team.UpdatedAt != nil {
		updatedAtStr := team.UpdatedAt.Format(time.RFC3339)
		updatedAt = &updatedAtStr
	}

	return TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		SubjectID: team.SubjectID,
		Leader:    domainMemberToHTTP(team.Leader),
		Members:   members,
		Status:    string(team.Status),
		Meetings:  meetings,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}
