package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
	"github.com/bagdasarian/study-teams/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
	gen      Generator
	locks    *teamLocker
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, gen Generator) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		gen:      gen,
		locks:    newTeamLocker(),
	}
}

// CreateTeam создает команду, лидер становится первым участником
func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*domain.Team, error) {
	team, err := newTeam(s.gen, input.Name, input.SubjectID, input.LeaderName, input.LeaderEmail, input.LeaderTimezone)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, domain.NewUnavailableError(err)
	}

	return team, nil
}

// ListTeams возвращает снимок всех команд; изоляция от параллельных
// мутаций отдельных команд не требуется
func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, domain.NewUnavailableError(err)
	}
	return teams, nil
}

// GetTeam получает команду по id
func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.loadTeam(ctx, id)
}

// JoinTeam добавляет участника в команду
func (s *teamService) JoinTeam(ctx context.Context, id, name, email string) (*domain.Team, error) {
	if name == "" {
		return nil, domain.NewInvalidArgumentError("name")
	}
	if email == "" {
		return nil, domain.NewInvalidArgumentError("email")
	}

	return s.mutate(ctx, id, func(team *domain.Team) error {
		return joinTeam(team, name, email)
	})
}

// RemoveMember удаляет участника; лидера удалить нельзя
func (s *teamService) RemoveMember(ctx context.Context, id, email string) (*domain.Team, error) {
	if email == "" {
		return nil, domain.NewInvalidArgumentError("email")
	}

	return s.mutate(ctx, id, func(team *domain.Team) error {
		return removeMember(team, email)
	})
}

// UpdateTimezone устанавливает timezone конкретному участнику
func (s *teamService) UpdateTimezone(ctx context.Context, id, email, timezone string) (*domain.Team, error) {
	if email == "" {
		return nil, domain.NewInvalidArgumentError("email")
	}
	if timezone == "" {
		return nil, domain.NewInvalidArgumentError("timezone")
	}

	return s.mutate(ctx, id, func(team *domain.Team) error {
		return updateTimezone(team, email, timezone)
	})
}

// UpdateDetails перезаписывает название и предмет команды
func (s *teamService) UpdateDetails(ctx context.Context, id, name, subjectID string) (*domain.Team, error) {
	return s.mutate(ctx, id, func(team *domain.Team) error {
		return updateDetails(team, name, subjectID)
	})
}

// ScheduleMeeting добавляет встречу от имени участника команды
func (s *teamService) ScheduleMeeting(ctx context.Context, id, topic string, startTime time.Time, requesterEmail string) (*domain.Team, error) {
	if topic == "" {
		return nil, domain.NewInvalidArgumentError("topic")
	}
	if startTime.IsZero() {
		return nil, domain.NewInvalidArgumentError("startTime")
	}
	if requesterEmail == "" {
		return nil, domain.NewInvalidArgumentError("email")
	}

	return s.mutate(ctx, id, func(team *domain.Team) error {
		return scheduleMeeting(s.gen, team, topic, startTime, requesterEmail)
	})
}

// VerifyMeetingAccess возвращает ссылку на встречу после проверки членства
func (s *teamService) VerifyMeetingAccess(ctx context.Context, teamID, meetingID, requesterEmail string) (string, error) {
	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return "", err
	}

	return meetingJoinURL(team, meetingID, requesterEmail)
}

// DeleteTeam безусловно удаляет команду; возвращает, существовала ли запись
func (s *teamService) DeleteTeam(ctx context.Context, id string) (bool, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	existed, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		return false, domain.NewUnavailableError(err)
	}

	return existed, nil
}

// mutate выполняет цикл "загрузить - применить переход - сохранить" под
// замком команды. Ошибка перехода оставляет хранилище нетронутым.
func (s *teamService) mutate(ctx context.Context, id string, apply func(*domain.Team) error) (*domain.Team, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	team, err := s.loadTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(team); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, domain.NewUnavailableError(err)
	}

	return team, nil
}

func (s *teamService) loadTeam(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with id " + id)
		}
		return nil, domain.NewUnavailableError(err)
	}
	return team, nil
}
