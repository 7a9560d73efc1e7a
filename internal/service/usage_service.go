// FILE: internal/service/usage_service.go
package service

import (
	"context"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUsageService interface {
	GetUserUsage(ctx context.Context, userId uuid.UUID, toolId *uuid.UUID) (*dto.UsageSummaryResponse, error)
	RecordUsage(ctx context.Context, userId uuid.UUID, req *dto.RecordUsageRequest) error
}

type usageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUsageService(uowFactory unitofwork.RepositoryFactory) IUsageService {
	return &usageService{uowFactory: uowFactory}
}

func (s *usageService) GetUserUsage(ctx context.Context, userId uuid.UUID, toolId *uuid.UUID) (*dto.UsageSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if toolId != nil {
		specs = append(specs, specification.ForTool{ToolID: *toolId})
	}

	counts, err := uow.UsageRepository().CountByAction(ctx, specs...)
	if err != nil {
		return nil, err
	}

	summary := entity.UsageSummary{
		Searches: counts[entity.ActionTypeSearch],
		Exports:  counts[entity.ActionTypeExport],
		ApiCalls: counts[entity.ActionTypeApiCall],
	}
	return mapUsageSummaryResponse(summary), nil
}

func mapUsageSummaryResponse(summary entity.UsageSummary) *dto.UsageSummaryResponse {
	return &dto.UsageSummaryResponse{
		Searches: summary.Searches,
		Exports:  summary.Exports,
		ApiCalls: summary.ApiCalls,
	}
}

func (s *usageService) RecordUsage(ctx context.Context, userId uuid.UUID, req *dto.RecordUsageRequest) error {
	toolId, err := uuid.Parse(req.ToolId)
	if err != nil {
		return ErrToolNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tool, err := uow.ToolRepository().FindOne(ctx, specification.ByID{ID: toolId})
	if err != nil {
		return err
	}
	if tool == nil {
		return ErrToolNotFound
	}

	stat := &entity.UsageStat{
		Id:         uuid.New(),
		UserId:     userId,
		ToolId:     toolId,
		ActionType: entity.ActionType(req.ActionType),
		CreatedAt:  time.Now(),
	}
	return uow.UsageRepository().Create(ctx, stat)
}
