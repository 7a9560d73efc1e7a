// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/pkg/logger"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"
	"sellerkit-be/pkg/admin/dashboard"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetAllUsers(ctx context.Context) ([]*dto.UserResponse, error)
	GetUsersWithSubscriptions(ctx context.Context) ([]*dto.UserWithSubscriptionsResponse, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, status string) (*dto.UserResponse, error)
	GetPlatformAnalytics(ctx context.Context) (*dto.PlatformAnalyticsResponse, error)
	GetToolAnalytics(ctx context.Context, toolId uuid.UUID) (*dto.ToolAnalyticsResponse, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *dashboard.Aggregator,
	logger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		logger:     logger,
	}
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, mapUserResponse(user))
	}
	return result, nil
}

// GetUsersWithSubscriptions builds the admin user table in a fixed number of
// queries: one for users, one joined query for active subscription rows, and
// one over all subscriptions for the account status derivation. No per-user
// round trips.
func (s *adminService) GetUsersWithSubscriptions(ctx context.Context) ([]*dto.UserWithSubscriptionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	activeRows, err := uow.SubscriptionRepository().ListUserSubscriptionRows(ctx)
	if err != nil {
		return nil, err
	}

	allSubs, err := uow.SubscriptionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	activeByUser := make(map[uuid.UUID][]*entity.UserSubscriptionRow)
	for _, row := range activeRows {
		activeByUser[row.UserId] = append(activeByUser[row.UserId], row)
	}
	subsByUser := make(map[uuid.UUID][]*entity.Subscription)
	for _, sub := range allSubs {
		subsByUser[sub.UserId] = append(subsByUser[sub.UserId], sub)
	}

	result := make([]*dto.UserWithSubscriptionsResponse, 0, len(users))
	for _, user := range users {
		res := &dto.UserWithSubscriptionsResponse{
			UserResponse:  *mapUserResponse(user),
			AccountStatus: string(entity.DeriveAccountStatus(subsByUser[user.Id])),
			Subscriptions: make([]dto.SubscriptionResponse, 0),
		}
		for _, row := range activeByUser[user.Id] {
			res.Subscriptions = append(res.Subscriptions, dto.SubscriptionResponse{
				Id:               row.SubscriptionId,
				UserId:           row.UserId,
				ToolId:           row.ToolId,
				Status:           string(row.Status),
				SubscriptionType: string(row.SubscriptionType),
				StartDate:        row.StartDate,
				EndDate:          row.EndDate,
				Amount:           row.Amount,
				Tool: &dto.ToolResponse{
					Id:       row.ToolId,
					Name:     row.ToolName,
					Price:    row.ToolPrice,
					Category: row.ToolCategory,
					IsActive: true,
				},
			})
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, status string) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Status = entity.UserStatus(status)
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("admin", "User status updated", map[string]interface{}{
		"user_id": userId,
		"status":  status,
	})

	return mapUserResponse(user), nil
}

func (s *adminService) GetPlatformAnalytics(ctx context.Context) (*dto.PlatformAnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	analytics, err := s.aggregator.GetPlatformAnalytics(ctx, uow)
	if err != nil {
		return nil, err
	}

	return &dto.PlatformAnalyticsResponse{
		Mrr:               analytics.MRR,
		ActiveSubscribers: analytics.ActiveSubscribers,
		ChurnRate:         analytics.ChurnRate,
		TotalSearches:     analytics.TotalSearches,
		RevenueGrowth:     analytics.RevenueGrowth,
		SubscriberGrowth:  analytics.SubscriberGrowth,
	}, nil
}

func (s *adminService) GetToolAnalytics(ctx context.Context, toolId uuid.UUID) (*dto.ToolAnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tool, err := uow.ToolRepository().FindOne(ctx, specification.ByID{ID: toolId})
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}

	analytics, err := s.aggregator.GetToolAnalytics(ctx, uow, toolId)
	if err != nil {
		return nil, err
	}

	return &dto.ToolAnalyticsResponse{
		Subscribers: analytics.Subscribers,
		Revenue:     analytics.Revenue,
		Usage:       analytics.Usage,
	}, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	return s.aggregator.GetSystemLogs(ctx, s.logger, page, limit, level)
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	return s.aggregator.GetLogDetail(ctx, s.logger, logId)
}
