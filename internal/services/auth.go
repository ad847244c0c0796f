// Файл: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.SignupResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
	cfg        *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
		cfg:        cfg,
	}
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	name := strings.TrimSpace(payload.Name)
	email := strings.TrimSpace(payload.Email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("All fields are strictly required")
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.NewValidationError("Email already in use")
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, apperrors.NewStoreError("Server error during registration", err)
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, apperrors.NewStoreError("Server error during registration", err)
	}

	user, err := s.userRepo.CreateUser(ctx, &entities.User{Name: name, Email: email, Password: hash})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewValidationError("Email already in use")
		}
		return nil, apperrors.NewStoreError("Server error during registration", err)
	}

	s.logger.Info("Зарегистрирован пользователь", zap.Uint64("userID", user.ID))
	return &dto.SignupResponseDTO{ID: user.ID, Name: user.Name}, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(payload.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStoreError("Login failed", err)
	}
	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, user.ID)

	token, _, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.NewStoreError("Login failed", err)
	}

	return &dto.LoginResponseDTO{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}

// Logout отзывает текущий токен до истечения его срока.
func (s *AuthService) Logout(ctx context.Context) error {
	auth, err := utils.GetAuthFromCtx(ctx)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(constants.CacheKeyRevokedToken, auth.TokenID)
	if err := s.cacheRepo.Set(ctx, key, "revoked", s.jwtService.GetAccessTokenTTL()); err != nil {
		return apperrors.NewStoreError("Logout failed", err)
	}
	s.logger.Info("Токен отозван", zap.Uint64("userID", auth.UserID))
	return nil
}

func (s *AuthService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.cacheRepo.Exists(ctx, fmt.Sprintf(constants.CacheKeyRevokedToken, tokenID))
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	locked, err := s.cacheRepo.Exists(ctx, fmt.Sprintf(constants.CacheKeyLockout, userID))
	if err != nil {
		s.logger.Warn("Не удалось проверить блокировку", zap.Uint64("userID", userID), zap.Error(err))
		return nil
	}
	if locked {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, userID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("Не удалось учесть неудачный вход", zap.Uint64("userID", userID), zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf(constants.CacheKeyLockout, userID)
		_ = s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("Аккаунт временно заблокирован", zap.Uint64("userID", userID))
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, userID)
	lockoutKey := fmt.Sprintf(constants.CacheKeyLockout, userID)
	_ = s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}
