package service

import (
	"context"
	"encoding/json"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/pkg/logger"
	"sellerkit-be/internal/repository/contract"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Testify mocks over the repository contracts, shared by the service tests.

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockToolRepository struct{ mock.Mock }

func (m *mockToolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *mockToolRepository) UpdatePartial(ctx context.Context, id uuid.UUID, update *entity.ToolUpdate) (*entity.Tool, error) {
	args := m.Called(ctx, id, update)
	if v := args.Get(0); v != nil {
		return v.(*entity.Tool), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockToolRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tool, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.Tool), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockToolRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tool, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Tool), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSubscriptionRepository struct{ mock.Mock }

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) FindAllWithTool(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepository) ListUserSubscriptionRows(ctx context.Context) ([]*entity.UserSubscriptionRow, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.UserSubscriptionRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) SumActiveMonthlyRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockResearchRepository struct{ mock.Mock }

func (m *mockResearchRepository) Create(ctx context.Context, research *entity.KeywordResearch) error {
	return m.Called(ctx, research).Error(0)
}

func (m *mockResearchRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeywordResearch, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.KeywordResearch), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUsageRepository struct{ mock.Mock }

func (m *mockUsageRepository) Create(ctx context.Context, stat *entity.UsageStat) error {
	return m.Called(ctx, stat).Error(0)
}

func (m *mockUsageRepository) CountByAction(ctx context.Context, specs ...specification.Specification) (map[entity.ActionType]int, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(map[entity.ActionType]int), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockCmsRepository struct{ mock.Mock }

func (m *mockCmsRepository) FindBySection(ctx context.Context, section string) (*entity.CmsContent, error) {
	args := m.Called(ctx, section)
	if v := args.Get(0); v != nil {
		return v.(*entity.CmsContent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCmsRepository) Upsert(ctx context.Context, section string, content json.RawMessage) (*entity.CmsContent, error) {
	args := m.Called(ctx, section, content)
	if v := args.Get(0); v != nil {
		return v.(*entity.CmsContent), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockUnitOfWork hands out the mock repositories; transaction calls are
// recorded so tests can assert Begin/Commit pairing.
type mockUnitOfWork struct {
	mock.Mock
	users    *mockUserRepository
	tools    *mockToolRepository
	subs     *mockSubscriptionRepository
	research *mockResearchRepository
	usage    *mockUsageRepository
	cms      *mockCmsRepository
}

func (m *mockUnitOfWork) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockUnitOfWork) Commit() error                   { return m.Called().Error(0) }
func (m *mockUnitOfWork) Rollback() error                 { return m.Called().Error(0) }

func (m *mockUnitOfWork) UserRepository() contract.UserRepository { return m.users }
func (m *mockUnitOfWork) ToolRepository() contract.ToolRepository { return m.tools }
func (m *mockUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return m.subs
}
func (m *mockUnitOfWork) ResearchRepository() contract.ResearchRepository { return m.research }
func (m *mockUnitOfWork) UsageRepository() contract.UsageRepository       { return m.usage }
func (m *mockUnitOfWork) CmsRepository() contract.CmsRepository           { return m.cms }

type mockRepositoryFactory struct {
	uow *mockUnitOfWork
}

func (f *mockRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newMockUow() (*mockRepositoryFactory, *mockUnitOfWork) {
	uow := &mockUnitOfWork{
		users:    &mockUserRepository{},
		tools:    &mockToolRepository{},
		subs:     &mockSubscriptionRepository{},
		research: &mockResearchRepository{},
		usage:    &mockUsageRepository{},
		cms:      &mockCmsRepository{},
	}
	return &mockRepositoryFactory{uow: uow}, uow
}

// noopLogger satisfies logger.ILogger for services that log.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return []logger.LogEntry{}, nil
}
func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) {
	return &logger.LogEntry{Id: id}, nil
}
