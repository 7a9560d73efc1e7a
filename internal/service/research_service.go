// FILE: internal/service/research_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"
	"sellerkit-be/pkg/keyword"

	"sellerkit-be/pkg/events"
	pktNats "sellerkit-be/pkg/nats"

	"github.com/google/uuid"
)

type IResearchService interface {
	PerformResearch(ctx context.Context, userId uuid.UUID, req *dto.KeywordResearchRequest) (*entity.ResearchResults, error)
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ResearchHistoryResponse, error)
}

type researchService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewResearchService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IResearchService {
	return &researchService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// PerformResearch generates suggestions for the seed, then records the search
// in the history table and as a usage event.
func (s *researchService) PerformResearch(ctx context.Context, userId uuid.UUID, req *dto.KeywordResearchRequest) (*entity.ResearchResults, error) {
	results := keyword.Generate(req.SeedKeyword, req.Platforms)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	research := &entity.KeywordResearch{
		Id:          uuid.New(),
		UserId:      userId,
		SeedKeyword: req.SeedKeyword,
		Platforms:   req.Platforms,
		Results:     *results,
		CreatedAt:   now,
	}
	if err := uow.ResearchRepository().Create(ctx, research); err != nil {
		return nil, err
	}

	// The search counts against the catalog's keyword research tool. If no
	// such tool is registered the usage event is skipped rather than
	// recorded against a dangling tool id.
	if toolId := s.lookupKeywordToolId(ctx, uow); toolId != uuid.Nil {
		stat := &entity.UsageStat{
			Id:         uuid.New(),
			UserId:     userId,
			ToolId:     toolId,
			ActionType: entity.ActionTypeSearch,
			CreatedAt:  now,
		}
		if err := uow.UsageRepository().Create(ctx, stat); err != nil {
			return nil, err
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "KEYWORD_SEARCH",
			Data: map[string]interface{}{
				"user_id":      userId,
				"seed_keyword": req.SeedKeyword,
				"platforms":    req.Platforms,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish KEYWORD_SEARCH event: %v\n", err)
		}
	}

	return results, nil
}

func (s *researchService) lookupKeywordToolId(ctx context.Context, uow unitofwork.UnitOfWork) uuid.UUID {
	tool, err := uow.ToolRepository().FindOne(ctx,
		specification.Filter("category", "keyword-research"),
		specification.ActiveTools{},
	)
	if err != nil || tool == nil {
		return uuid.Nil
	}
	return tool.Id
}

func (s *researchService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ResearchHistoryResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.ResearchRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ResearchHistoryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.ResearchHistoryResponse{
			Id:          row.Id,
			SeedKeyword: row.SeedKeyword,
			Platforms:   row.Platforms,
			Results:     row.Results,
			CreatedAt:   row.CreatedAt,
		})
	}
	return result, nil
}
