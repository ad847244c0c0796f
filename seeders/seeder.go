package seeders

import (
	"context"
	"fmt"
	"log"

	"gearguard/internal/repositories"
	"gearguard/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SeedDictionaries наполняет команды и демо-оборудование.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Команд (Teams): %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipment): %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedAdmin создаёт администратора, если его ещё нет.
func SeedAdmin(db *pgxpool.Pool, creds AdminCredentials) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания администратора...")

	if err := seedAdmin(ctx, db, creds); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	log.Println("✅ Администратор готов!")
}

// ImportEquipment загружает оборудование из XLSX-файла.
func ImportEquipment(db *pgxpool.Pool, filePath string, logger *zap.Logger) (*services.ImportResult, error) {
	log.Printf("▶️  Импорт оборудования из файла %s...", filePath)

	importer := services.NewEquipImportService(
		repositories.NewEquipmentRepository(db, logger),
		repositories.NewTeamRepository(db),
		logger,
	)
	result, err := importer.ImportFile(context.Background(), filePath)
	if err != nil {
		return result, fmt.Errorf("импорт не выполнен: %w", err)
	}

	log.Printf("✅ Импорт завершён: создано %d, пропущено %d, ошибок %d", result.Created, result.Skipped, result.Failed)
	return result, nil
}
