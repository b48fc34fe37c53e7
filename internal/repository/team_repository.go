package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/study-teams/internal/domain"
)

// ErrTeamNotFound возвращается, когда команды с таким id нет в хранилище
var ErrTeamNotFound = errors.New("team not found")

// TeamRepository - хранилище команд: одна запись на команду, полная замена по id
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Save(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*domain.Team, error)
}
