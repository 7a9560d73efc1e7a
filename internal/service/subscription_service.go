// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"

	"sellerkit-be/pkg/events"
	pktNats "sellerkit-be/pkg/nats"

	"github.com/google/uuid"
)

const subscriptionTermDays = 365

type ISubscriptionService interface {
	GetUserSubscriptions(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	Subscribe(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *subscriptionService) GetUserSubscriptions(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAllWithTool(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveSubscriptions{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, mapSubscriptionResponse(sub))
	}
	return result, nil
}

// Subscribe creates a one-year active subscription. The existence check and
// the insert run inside one transaction so concurrent requests cannot both
// pass the check.
func (s *subscriptionService) Subscribe(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	toolId, err := uuid.Parse(req.ToolId)
	if err != nil {
		return nil, ErrToolNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	tool, err := uow.ToolRepository().FindOne(ctx,
		specification.ByID{ID: toolId},
		specification.ActiveTools{},
	)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}

	existing, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ForTool{ToolID: toolId},
		specification.ActiveSubscriptions{},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, subscriptionTermDays)
	amount := tool.Price
	sub := &entity.Subscription{
		Id:               uuid.New(),
		UserId:           userId,
		ToolId:           toolId,
		Status:           entity.SubscriptionStatusActive,
		SubscriptionType: entity.SubscriptionTypePaid,
		StartDate:        now,
		EndDate:          &endDate,
		Amount:           &amount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"user_id": userId,
				"tool_id": toolId,
				"amount":  amount,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	sub.Tool = tool
	return mapSubscriptionResponse(sub), nil
}

func mapSubscriptionResponse(sub *entity.Subscription) *dto.SubscriptionResponse {
	res := &dto.SubscriptionResponse{
		Id:               sub.Id,
		UserId:           sub.UserId,
		ToolId:           sub.ToolId,
		Status:           string(sub.Status),
		SubscriptionType: string(sub.SubscriptionType),
		StartDate:        sub.StartDate,
		EndDate:          sub.EndDate,
		Amount:           sub.Amount,
		CreatedAt:        sub.CreatedAt,
	}
	if sub.Tool != nil {
		res.Tool = mapToolResponse(sub.Tool)
	}
	return res
}
