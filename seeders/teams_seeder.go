package seeders

import (
	"context"
	"fmt"
	"log"

	"gearguard/internal/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'teams'...")

	teamRepo := repositories.NewTeamRepository(db)
	for _, name := range teamsData {
		if _, err := teamRepo.CreateTeam(ctx, name); err != nil {
			return fmt.Errorf("не удалось создать команду '%s': %w", name, err)
		}
	}

	log.Printf("    - Команд проверено/создано: %d", len(teamsData))
	return nil
}
