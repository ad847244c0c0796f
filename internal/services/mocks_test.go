package services

import (
	"context"
	"sync"
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager выполняет fn без настоящей транзакции.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]entities.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetUsableEquipments(ctx context.Context) ([]entities.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) CreateEquipment(ctx context.Context, entity *entities.Equipment) (uint64, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockEquipmentRepository) UpdateEquipment(ctx context.Context, entity *entities.Equipment) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockEquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEquipmentRepository) MarkScrappedInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *MockEquipmentRepository) MarkServicedInTx(ctx context.Context, tx pgx.Tx, id uint64, at time.Time) error {
	return m.Called(ctx, tx, id, at).Error(0)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) GetRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.Request, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Request), args.Error(1)
}

func (m *MockRequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Request), args.Error(1)
}

func (m *MockRequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, entity *entities.Request) (*entities.Request, error) {
	args := m.Called(ctx, tx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Request), args.Error(1)
}

func (m *MockRequestRepository) FindRequestForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Request), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string, duration *int) (*entities.Request, error) {
	args := m.Called(ctx, tx, id, status, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Request), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, entity *entities.User) (*entities.User, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *MockTeamRepository) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetHighRiskAssets(ctx context.Context, limit uint64, includeIdle bool) ([]entities.HighRiskAsset, error) {
	args := m.Called(ctx, limit, includeIdle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.HighRiskAsset), args.Error(1)
}

func (m *MockReportRepository) GetTeamPerformance(ctx context.Context) ([]entities.TeamPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamPerformance), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetSummary(ctx context.Context, now time.Time) (*entities.DashboardSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DashboardSummary), args.Error(1)
}

// memoryCache - кеш в памяти вместо Redis, без учёта TTL.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

var _ repositories.CacheRepositoryInterface = (*memoryCache)(nil)

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = toString(value)
	c.ttl[key] = expiration
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		delete(c.ttl, k)
	}
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	if v, ok := c.data[key]; ok {
		n = parseInt(v)
	}
	n++
	c.data[key] = toString(n)
	return n, nil
}

func (c *memoryCache) Expire(_ context.Context, key string, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		return false, nil
	}
	c.ttl[key] = expiration
	return true, nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}
