package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/study-teams/internal/domain"
	"github.com/bagdasarian/study-teams/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

const teamColumns = `id, name, subject_id, leader_name, leader_email, status, members, meetings, created_at, updated_at`

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE id = $1
	`

	row := r.executor.QueryRowContext(ctx, query, id)
	team, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTeamNotFound
		}
		return nil, err
	}

	return team, nil
}

// Save выполняет полную замену записи команды по id (upsert одним запросом)
func (r *teamRepository) Save(ctx context.Context, team *domain.Team) error {
	members, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("marshal members: %w", err)
	}
	meetings, err := json.Marshal(team.Meetings)
	if err != nil {
		return fmt.Errorf("marshal meetings: %w", err)
	}

	query := `
		INSERT INTO teams (id, name, subject_id, leader_name, leader_email, status, members, meetings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    subject_id = EXCLUDED.subject_id,
		    leader_name = EXCLUDED.leader_name,
		    leader_email = EXCLUDED.leader_email,
		    status = EXCLUDED.status,
		    members = EXCLUDED.members,
		    meetings = EXCLUDED.meetings,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`

	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now()
	}

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.SubjectID,
		team.Leader.Name,
		team.Leader.Email,
		string(team.Status),
		members,
		meetings,
		team.CreatedAt,
	).Scan(&team.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	} else {
		team.UpdatedAt = nil
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		ORDER BY created_at, id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var members, meetings []byte
	var status string
	var updatedAt sql.NullTime

	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.SubjectID,
		&team.Leader.Name,
		&team.Leader.Email,
		&status,
		&members,
		&meetings,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	team.Status = domain.Status(status)
	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	if err := json.Unmarshal(members, &team.Members); err != nil {
		return nil, fmt.Errorf("unmarshal members: %w", err)
	}
	if err := json.Unmarshal(meetings, &team.Meetings); err != nil {
		return nil, fmt.Errorf("unmarshal meetings: %w", err)
	}

	// Лидер дублируется в скалярных колонках; timezone лидера живёт в members
	if idx, ok := team.MemberByEmail(team.Leader.Email); ok {
		team.Leader = team.Members[idx]
	}

	return team, nil
}
