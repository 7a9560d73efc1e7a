// FILE: internal/service/tool_service.go
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

type IToolService interface {
	GetActiveTools(ctx context.Context) ([]*dto.ToolResponse, error)
	CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*dto.ToolResponse, error)
	UpdateTool(ctx context.Context, id uuid.UUID, req *dto.UpdateToolRequest) (*dto.ToolResponse, error)
}

type toolService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewToolService(uowFactory unitofwork.RepositoryFactory) IToolService {
	return &toolService{uowFactory: uowFactory}
}

func (s *toolService) GetActiveTools(ctx context.Context) ([]*dto.ToolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tools, err := uow.ToolRepository().FindAll(ctx,
		specification.ActiveTools{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ToolResponse, 0, len(tools))
	for _, tool := range tools {
		result = append(result, mapToolResponse(tool))
	}
	return result, nil
}

func (s *toolService) CreateTool(ctx context.Context, req *dto.CreateToolRequest) (*dto.ToolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trialDays := req.TrialDays
	if trialDays == 0 {
		trialDays = trialPeriodDays
	}
	category := req.Category
	if category == "" {
		category = "keyword-research"
	}

	tool := &entity.Tool{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		TrialDays:   trialDays,
		Category:    category,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.ToolRepository().Create(ctx, tool); err != nil {
		return nil, err
	}

	return mapToolResponse(tool), nil
}

func (s *toolService) UpdateTool(ctx context.Context, id uuid.UUID, req *dto.UpdateToolRequest) (*dto.ToolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	update := &entity.ToolUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		TrialDays:   req.TrialDays,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}

	tool, err := uow.ToolRepository().UpdatePartial(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}

	return mapToolResponse(tool), nil
}

func mapToolResponse(tool *entity.Tool) *dto.ToolResponse {
	return &dto.ToolResponse{
		Id:          tool.Id,
		Name:        tool.Name,
		Description: tool.Description,
		Icon:        tool.Icon,
		Price:       tool.Price,
		TrialDays:   tool.TrialDays,
		Category:    tool.Category,
		IsActive:    tool.IsActive,
		CreatedAt:   tool.CreatedAt,
		UpdatedAt:   tool.UpdatedAt,
	}
}
