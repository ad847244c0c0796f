package repositories

import (
	"context"
	"fmt"

	"gearguard/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, name string) (*entities.Team, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name FROM teams ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса команд: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var team entities.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// CreateTeam идемпотентна по имени, нужна сидеру.
func (r *TeamRepository) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	var team entities.Team
	query := `INSERT INTO teams (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`
	if err := r.storage.QueryRow(ctx, query, name).Scan(&team.ID, &team.Name); err != nil {
		return nil, fmt.Errorf("ошибка создания команды %q: %w", name, err)
	}
	return &team, nil
}
