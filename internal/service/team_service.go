package service

import (
	"context"
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
)

type CreateTeamInput struct {
	Name           string
	SubjectID      string
	LeaderName     string
	LeaderEmail    string
	LeaderTimezone string
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	JoinTeam(ctx context.Context, id, name, email string) (*domain.Team, error)
	RemoveMember(ctx context.Context, id, email string) (*domain.Team, error)
	UpdateTimezone(ctx context.Context, id, email, timezone string) (*domain.Team, error)
	UpdateDetails(ctx context.Context, id, name, subjectID string) (*domain.Team, error)
	ScheduleMeeting(ctx context.Context, id, topic string, startTime time.Time, requesterEmail string) (*domain.Team, error)
	VerifyMeetingAccess(ctx context.Context, teamID, meetingID, requesterEmail string) (string, error)
	DeleteTeam(ctx context.Context, id string) (bool, error)
}
