package services

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	GetCurrentUser(ctx context.Context) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetUsers - список для назначения техников, без паролей.
func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("Failed to fetch users", err)
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *userToDTO(&users[i]))
	}
	return out, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("GetCurrentUser: пользователь из токена не найден", zap.Uint64("userID", userID))
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.NewStoreError("Failed to fetch user", err)
	}
	return userToDTO(user), nil
}
