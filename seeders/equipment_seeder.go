package seeders

import (
	"context"
	"fmt"
	"log"

	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedEquipment добавляет демо-оборудование; существующие серийные номера не трогает.
func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'equipment'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	teamsMap, err := mapAllIDsByName(ctx, tx, "teams")
	if err != nil {
		return fmt.Errorf("ошибка получения ID команд: %w", err)
	}

	query := `INSERT INTO equipment (name, serial_number, category, location, maintenance_team_id)
			  VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
			  ON CONFLICT (serial_number) DO NOTHING`

	inserted := 0
	for _, e := range equipmentData {
		var teamID *uint64
		if e.TeamName != "" {
			id, ok := teamsMap[e.TeamName]
			if !ok {
				log.Printf("ПРЕДУПРЕЖДЕНИЕ: Команда '%s' не найдена, оборудование '%s' будет без команды.", e.TeamName, e.Name)
			} else {
				teamID = utils.ToPtr(id)
			}
		}

		tag, err := tx.Exec(ctx, query, e.Name, e.SerialNumber, e.Category, e.Location, teamID)
		if err != nil {
			return fmt.Errorf("ошибка при вставке оборудования '%s': %w", e.SerialNumber, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Printf("    - Добавлено оборудования: %d", inserted)
	return nil
}

func mapAllIDsByName(ctx context.Context, tx pgx.Tx, table string) (map[string]uint64, error) {
	query := fmt.Sprintf("SELECT id, name FROM %s", table)
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultMap := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		resultMap[name] = id
	}
	return resultMap, rows.Err()
}
