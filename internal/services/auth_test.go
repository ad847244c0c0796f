package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type AuthServiceTestSuite struct {
	suite.Suite
	users *MockUserRepository
	cache *memoryCache
	jwt   service.JWTService
	svc   AuthServiceInterface
	user  *entities.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.users = new(MockUserRepository)
	s.cache = newMemoryCache()
	s.jwt = service.NewJWTService("test-secret", time.Hour)
	s.svc = NewAuthService(s.users, s.cache, s.jwt, zap.NewNop(), &config.AuthConfig{
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Minute,
	})

	hash, err := utils.HashPassword("secret1")
	s.Require().NoError(err)
	s.user = &entities.User{ID: 7, Name: "Ann", Email: "ann@example.com", Password: hash}
}

func (s *AuthServiceTestSuite) TestSignup_Success() {
	s.users.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, apperrors.ErrNotFound)
	s.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Name == "Bob" && u.Email == "bob@example.com" && utils.ComparePasswords(u.Password, "secret1") == nil
	})).Return(&entities.User{ID: 8, Name: "Bob", Email: "bob@example.com"}, nil)

	out, err := s.svc.Signup(context.Background(), dto.SignupDTO{
		Name: " Bob ", Email: "bob@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})

	s.Require().NoError(err)
	s.Equal(uint64(8), out.ID)
	s.Equal("Bob", out.Name)
	s.users.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	s.users.On("FindByEmail", mock.Anything, "ann@example.com").Return(s.user, nil)

	_, err := s.svc.Signup(context.Background(), dto.SignupDTO{
		Name: "Ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})

	var httpErr *apperrors.HttpError
	s.Require().True(errors.As(err, &httpErr))
	s.Equal(http.StatusBadRequest, httpErr.Code)
	s.Equal("Email already in use", httpErr.Message)
	s.users.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestSignup_RaceOnInsert() {
	s.users.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, apperrors.ErrNotFound)
	s.users.On("CreateUser", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("insert: %w", apperrors.ErrConflict))

	_, err := s.svc.Signup(context.Background(), dto.SignupDTO{
		Name: "Bob", Email: "bob@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})

	var httpErr *apperrors.HttpError
	s.Require().True(errors.As(err, &httpErr))
	s.Equal(http.StatusBadRequest, httpErr.Code)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	s.users.On("FindByEmail", mock.Anything, "ann@example.com").Return(s.user, nil)

	out, err := s.svc.Login(context.Background(), dto.LoginDTO{Email: "ann@example.com", Password: "secret1"})

	s.Require().NoError(err)
	s.Equal(uint64(7), out.ID)
	s.Equal("Ann", out.Name)
	s.Equal("ann@example.com", out.Email)

	claims, err := s.jwt.ValidateToken(out.AccessToken)
	s.Require().NoError(err)
	s.Equal(uint64(7), claims.UserID)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	_, err := s.svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@example.com", Password: "x"})

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordLocksAccount() {
	s.users.On("FindByEmail", mock.Anything, "ann@example.com").Return(s.user, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.svc.Login(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "wrong"})
		s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	}

	locked, _ := s.cache.Exists(ctx, fmt.Sprintf(constants.CacheKeyLockout, s.user.ID))
	s.True(locked)

	_, err := s.svc.Login(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "secret1"})
	s.ErrorIs(err, apperrors.ErrAccountLocked)
}

func (s *AuthServiceTestSuite) TestLogin_SuccessResetsAttempts() {
	s.users.On("FindByEmail", mock.Anything, "ann@example.com").Return(s.user, nil)
	ctx := context.Background()
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, s.user.ID)

	_, err := s.svc.Login(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "wrong"})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	s.Equal(time.Minute, s.cache.ttl[attemptsKey])

	_, err = s.svc.Login(ctx, dto.LoginDTO{Email: "ann@example.com", Password: "secret1"})
	s.Require().NoError(err)

	exists, _ := s.cache.Exists(ctx, attemptsKey)
	s.False(exists)
}

func (s *AuthServiceTestSuite) TestLogout_RevokesToken() {
	ctx := utils.WithAuthContext(context.Background(), utils.AuthContext{UserID: 7, TokenID: "token-1"})

	s.Require().NoError(s.svc.Logout(ctx))

	revoked, err := s.svc.IsTokenRevoked(ctx, "token-1")
	s.Require().NoError(err)
	s.True(revoked)
	s.Equal(time.Hour, s.cache.ttl[fmt.Sprintf(constants.CacheKeyRevokedToken, "token-1")])

	revoked, err = s.svc.IsTokenRevoked(ctx, "token-2")
	s.Require().NoError(err)
	s.False(revoked)
}

func (s *AuthServiceTestSuite) TestLogout_WithoutAuthContext() {
	err := s.svc.Logout(context.Background())
	s.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestUserService_GetCurrentUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, zap.NewNop())
	users.On("FindUserByID", mock.Anything, uint64(7)).Return(&entities.User{ID: 7, Name: "Ann", Email: "ann@example.com"}, nil)
	users.On("FindUserByID", mock.Anything, uint64(8)).Return(nil, apperrors.ErrNotFound)

	out, err := svc.GetCurrentUser(authCtx(7))
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", out.Email)

	_, err = svc.GetCurrentUser(authCtx(8))
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.GetCurrentUser(context.Background())
	assert.Error(t, err)
}

func TestUserService_GetUsers(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, zap.NewNop())
	users.On("GetUsers", mock.Anything).Return([]entities.User{
		{ID: 1, Name: "Ann", Email: "ann@example.com", Password: "hash"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Password: "hash"},
	}, nil)

	out, err := svc.GetUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Bob", out[1].Name)
}

func TestTeamService_GetTeams(t *testing.T) {
	teams := new(MockTeamRepository)
	svc := NewTeamService(teams)
	teams.On("GetTeams", mock.Anything).Return([]entities.Team{{ID: 1, Name: "Electricians"}, {ID: 2, Name: "Mechanics"}}, nil)

	out, err := svc.GetTeams(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.TeamDTO{{ID: 1, Name: "Electricians"}, {ID: 2, Name: "Mechanics"}}, out)
}
