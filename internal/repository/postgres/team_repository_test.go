package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/study-teams/internal/domain"
	"github.com/bagdasarian/study-teams/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает мок БД
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupTeamRepo создает мок БД и репозиторий для Team
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

var teamRowColumns = []string{
	"id", "name", "subject_id", "leader_name", "leader_email",
	"status", "members", "meetings", "created_at", "updated_at",
}

// TestTeamRepository_GetByID - тест для метода GetByID()
func TestTeamRepository_GetByID(t *testing.T) {
	t.Run("успешное получение команды с участниками и встречами", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		members := []domain.Member{
			{Name: "Alice", Email: "alice@example.com", Timezone: "UTC"},
			{Name: "Bob", Email: "bob@example.com"},
		}
		meetings := []domain.Meeting{
			{
				ID:        "m-1",
				Topic:     "Kickoff",
				StartTime: createdAt.Add(48 * time.Hour),
				JoinURL:   "https://zoom.us/j/1234567890",
				CreatedBy: "alice@example.com",
			},
		}

		rows := sqlmock.NewRows(teamRowColumns).
			AddRow("team-1", "Team Alpha", "SUBJ-101", "Alice", "alice@example.com",
				"OPEN", mustJSON(t, members), mustJSON(t, meetings), createdAt, nil)
		mock.ExpectQuery("SELECT id, name, subject_id").
			WithArgs("team-1").
			WillReturnRows(rows)

		team, err := repo.GetByID(context.Background(), "team-1")

		require.NoError(t, err)
		assert.Equal(t, "team-1", team.ID)
		assert.Equal(t, "Team Alpha", team.Name)
		assert.Equal(t, "SUBJ-101", team.SubjectID)
		assert.Equal(t, domain.StatusOpen, team.Status)
		assert.Len(t, team.Members, 2)
		assert.Equal(t, "alice@example.com", team.Members[0].Email)
		assert.Len(t, team.Meetings, 1)
		assert.Equal(t, "https://zoom.us/j/1234567890", team.Meetings[0].JoinURL)
		// timezone лидера берётся из members, а не из скалярных колонок
		assert.Equal(t, "UTC", team.Leader.Timezone)
		assert.Nil(t, team.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("SELECT id, name, subject_id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		team, err := repo.GetByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, repository.ErrTeamNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestTeamRepository_Save - тест для метода Save()
// Save выполняет upsert всей записи команды одним запросом
func TestTeamRepository_Save(t *testing.T) {
	t.Run("успешная вставка новой команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		team := &domain.Team{
			ID:        "team-1",
			Name:      "Team Alpha",
			SubjectID: "SUBJ-101",
			Leader:    domain.Member{Name: "Alice", Email: "alice@example.com"},
			Members:   []domain.Member{{Name: "Alice", Email: "alice@example.com"}},
			Status:    domain.StatusOpen,
			Meetings:  []domain.Meeting{},
		}

		now := time.Now()
		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(now, nil)
		mock.ExpectQuery("INSERT INTO teams").
			WithArgs("team-1", "Team Alpha", "SUBJ-101", "Alice", "alice@example.com",
				"OPEN", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Save(context.Background(), team)

		require.NoError(t, err)
		assert.Nil(t, team.UpdatedAt, "updated_at должен быть nil для новой команды")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("успешное обновление существующей команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		createdAt := time.Now().Add(-24 * time.Hour)
		updatedAt := time.Now()
		team := &domain.Team{
			ID:        "team-1",
			Name:      "Team Alpha",
			SubjectID: "SUBJ-101",
			Leader:    domain.Member{Name: "Alice", Email: "alice@example.com"},
			Members: []domain.Member{
				{Name: "Alice", Email: "alice@example.com"},
				{Name: "Bob", Email: "bob@example.com"},
			},
			Status:    domain.StatusOpen,
			CreatedAt: createdAt,
		}

		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(createdAt, updatedAt)
		mock.ExpectQuery("INSERT INTO teams").
			WithArgs("team-1", "Team Alpha", "SUBJ-101", "Alice", "alice@example.com",
				"OPEN", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Save(context.Background(), team)

		require.NoError(t, err)
		require.NotNil(t, team.UpdatedAt, "updated_at должен быть установлен при обновлении")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: БД недоступна", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		team := &domain.Team{
			ID:     "team-1",
			Leader: domain.Member{Name: "Alice", Email: "alice@example.com"},
		}

		expectedError := errors.New("connection refused")
		mock.ExpectQuery("INSERT INTO teams").
			WillReturnError(expectedError)

		err := repo.Save(context.Background(), team)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestTeamRepository_Delete - тест для метода Delete()
func TestTeamRepository_Delete(t *testing.T) {
	t.Run("успешное удаление существующей команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM teams").
			WithArgs("team-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		existed, err := repo.Delete(context.Background(), "team-1")

		require.NoError(t, err)
		assert.True(t, existed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("удаление несуществующей команды возвращает false", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM teams").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		existed, err := repo.Delete(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, existed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestTeamRepository_List - тест для метода List()
func TestTeamRepository_List(t *testing.T) {
	t.Run("успешное получение списка команд", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		members := []domain.Member{{Name: "Alice", Email: "alice@example.com"}}

		rows := sqlmock.NewRows(teamRowColumns).
			AddRow("team-1", "Alpha", "SUBJ-101", "Alice", "alice@example.com",
				"OPEN", mustJSON(t, members), []byte("[]"), createdAt, nil).
			AddRow("team-2", "Beta", "SUBJ-202", "Bob", "bob@example.com",
				"FULL", []byte("[]"), []byte("[]"), createdAt.Add(time.Hour), nil)
		mock.ExpectQuery("SELECT id, name, subject_id").
			WillReturnRows(rows)

		teams, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "team-1", teams[0].ID)
		assert.Equal(t, domain.StatusFull, teams[1].Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустое хранилище возвращает пустой список", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("SELECT id, name, subject_id").
			WillReturnRows(sqlmock.NewRows(teamRowColumns))

		teams, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, teams)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
