package controllers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"gearguard/internal/dto"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(customvalidator.New())
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SignupResponseDTO), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponseDTO), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserDTO), args.Error(1)
}

func (m *MockUserService) GetCurrentUser(ctx context.Context) (*dto.UserDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDTO), args.Error(1)
}

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EquipmentDTO), args.Error(1)
}

func (m *MockEquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EquipmentDTO), args.Error(1)
}

func (m *MockEquipmentService) GetEquipmentRequests(ctx context.Context, id uint64) ([]dto.RequestDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RequestDTO), args.Error(1)
}

func (m *MockEquipmentService) GetEquipmentOptions(ctx context.Context) ([]dto.EquipmentOptionDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EquipmentOptionDTO), args.Error(1)
}

func (m *MockEquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EquipmentDTO), args.Error(1)
}

func (m *MockEquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, rawBody []byte) (*dto.EquipmentDTO, error) {
	args := m.Called(ctx, id, payload, rawBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EquipmentDTO), args.Error(1)
}

func (m *MockEquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RequestDTO), args.Error(1)
}

func (m *MockRequestService) UpdateRequestStatus(ctx context.Context, id uint64, payload dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RequestDTO), args.Error(1)
}

func (m *MockRequestService) ListRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RequestDTO), args.Error(1)
}

func (m *MockRequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RequestDTO), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) HighRiskAssets(ctx context.Context, limit int) ([]dto.HighRiskAssetDTO, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.HighRiskAssetDTO), args.Error(1)
}

func (m *MockReportService) TeamPerformance(ctx context.Context) ([]dto.TeamPerformanceDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TeamPerformanceDTO), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardSummaryDTO), args.Error(1)
}
