package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gearguard/pkg/config"
	"gearguard/pkg/database/migrations"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runMigrate := flag.Bool("migrate", false, "Применить миграции перед сидированием")
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить команды и демо-оборудование")
	runAdmin := flag.Bool("admin", false, "Создать администратора")
	importFile := flag.String("import", "", "Путь к XLSX-файлу с оборудованием для импорта")
	runAll := flag.Bool("all", false, "Запустить всё (эквивалентно -migrate -dictionaries -admin)")

	adminName := flag.String("admin-name", "Administrator", "Имя администратора")
	adminEmail := flag.String("admin-email", envOr("SEED_ADMIN_EMAIL", "admin@gearguard.local"), "Email администратора")
	adminPassword := flag.String("admin-password", envOr("SEED_ADMIN_PASSWORD", "admin123"), "Пароль администратора")

	flag.Parse()

	// Если ни один флаг не указан - показываем справку
	if !*runMigrate && !*runDictionaries && !*runAdmin && *importFile == "" && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -migrate -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -admin -admin-email boss@example.com")
		log.Println("  go run ./seeders/cmd/seed -import ./equipment.xlsx")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	// Подключаемся к БД
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runMigrate {
		if err := migrations.Up(ctx, dbPool); err != nil {
			log.Fatalf("❌ Ошибка применения миграций: %v", err)
		}
		log.Println("✅ Миграции применены")
		log.Println("======================================================")
	}

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool, seeders.AdminCredentials{
			Name:     *adminName,
			Email:    *adminEmail,
			Password: *adminPassword,
		})
		log.Println("======================================================")
	}

	if *importFile != "" {
		// команды из файла создаются по имени, поэтому импорт идёт после справочников
		if _, err := seeders.ImportEquipment(dbPool, *importFile, logger); err != nil {
			log.Fatalf("❌ %v", err)
		}
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
