// Файл: seeders/admin_user_seeder.go
package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// AdminCredentials - учётка, с которой можно войти сразу после сидирования.
type AdminCredentials struct {
	Name     string
	Email    string
	Password string
}

func seedAdmin(ctx context.Context, db *pgxpool.Pool, creds AdminCredentials) error {
	log.Println("  - Создание пользователя-администратора...")

	userRepo := repositories.NewUserRepository(db, zap.NewNop())
	_, err := userRepo.FindByEmail(ctx, creds.Email)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword(creds.Password)
	if err != nil {
		return err
	}

	user, err := userRepo.CreateUser(ctx, &entities.User{
		Name:     creds.Name,
		Email:    creds.Email,
		Password: hashedPassword,
	})
	if err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	log.Printf("    - Администратор создан (ID: %d, email: %s)", user.ID, user.Email)
	return nil
}
