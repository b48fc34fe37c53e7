package service

import (
	"strings"
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
)

// Чистые переходы состояния команды. Функции не выполняют I/O и работают
// с копией команды, которой владеет вызывающий: при ошибке команда не меняется.

// newTeam собирает новую команду: лидер становится первым участником
func newTeam(gen Generator, name, subjectID, leaderName, leaderEmail, leaderTimezone string) (*domain.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewInvalidArgumentError("name")
	}
	if strings.TrimSpace(subjectID) == "" {
		return nil, domain.NewInvalidArgumentError("subjectId")
	}
	if strings.TrimSpace(leaderName) == "" {
		return nil, domain.NewInvalidArgumentError("leaderName")
	}
	if strings.TrimSpace(leaderEmail) == "" {
		return nil, domain.NewInvalidArgumentError("leaderEmail")
	}

	leader := domain.Member{
		Name:     leaderName,
		Email:    leaderEmail,
		Timezone: leaderTimezone,
	}

	team := &domain.Team{
		ID:        gen.NewID(),
		Name:      name,
		SubjectID: subjectID,
		Leader:    leader,
		Members:   []domain.Member{leader},
		Meetings:  []domain.Meeting{},
		CreatedAt: gen.Now(),
	}
	recomputeStatus(team)

	return team, nil
}

// joinTeam добавляет участника в конец списка
func joinTeam(team *domain.Team, name, email string) error {
	if team.IsFull() {
		return domain.ErrTeamFull
	}
	if _, ok := team.MemberByEmail(email); ok {
		return domain.ErrDuplicateMember
	}

	team.Members = append(team.Members, domain.Member{Name: name, Email: email})
	recomputeStatus(team)

	return nil
}

// removeMember удаляет участника по email; лидера удалить нельзя
func removeMember(team *domain.Team, email string) error {
	if email == team.Leader.Email {
		return domain.ErrLeaderRemoval
	}
	idx, ok := team.MemberByEmail(email)
	if !ok {
		return domain.ErrMemberNotFound
	}

	team.Members = append(team.Members[:idx], team.Members[idx+1:]...)
	recomputeStatus(team)

	return nil
}

// updateTimezone устанавливает timezone участнику; timezone лидера тоже
// хранится в members, отдельного поля нет
func updateTimezone(team *domain.Team, email, timezone string) error {
	idx, ok := team.MemberByEmail(email)
	if !ok {
		return domain.ErrMemberNotFound
	}

	team.Members[idx].Timezone = timezone
	if team.Leader.Email == email {
		team.Leader.Timezone = timezone
	}
	recomputeStatus(team)

	return nil
}

// updateDetails безусловно перезаписывает название и предмет
func updateDetails(team *domain.Team, name, subjectID string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewInvalidArgumentError("name")
	}
	if strings.TrimSpace(subjectID) == "" {
		return domain.NewInvalidArgumentError("subjectId")
	}

	team.Name = name
	team.SubjectID = subjectID
	recomputeStatus(team)

	return nil
}

// scheduleMeeting добавляет встречу; запись только дописывается и никогда не меняется
func scheduleMeeting(gen Generator, team *domain.Team, topic string, startTime time.Time, requesterEmail string) error {
	if err := requireMember(team, requesterEmail, domain.ErrNotAMember); err != nil {
		return err
	}

	meeting := domain.Meeting{
		ID:        gen.NewID(),
		Topic:     topic,
		StartTime: startTime,
		JoinURL:   gen.MeetingJoinURL(),
		CreatedBy: requesterEmail,
	}
	team.Meetings = append(team.Meetings, meeting)

	return nil
}

// meetingJoinURL возвращает ссылку на встречу после проверки членства
func meetingJoinURL(team *domain.Team, meetingID, requesterEmail string) (string, error) {
	if err := requireMember(team, requesterEmail, domain.ErrForbidden); err != nil {
		return "", err
	}

	meeting, ok := team.MeetingByID(meetingID)
	if !ok {
		return "", domain.NewNotFoundError("meeting with id " + meetingID)
	}

	return meeting.JoinURL, nil
}

// requireMember - проверка "авторизации": обычное сравнение email со списком
// участников. Точка замены на настоящую аутентификацию в будущем.
func requireMember(team *domain.Team, email string, denied *domain.DomainError) error {
	if _, ok := team.MemberByEmail(email); !ok {
		return denied
	}
	return nil
}

// recomputeStatus пересчитывает производный статус после каждого перехода:
// FULL тогда и только тогда, когда участников ровно Capacity
func recomputeStatus(team *domain.Team) {
	if len(team.Members) >= domain.Capacity {
		team.Status = domain.StatusFull
	} else {
		team.Status = domain.StatusOpen
	}
}
