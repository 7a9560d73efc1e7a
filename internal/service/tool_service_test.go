package service

import (
	"context"
	"testing"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTool_AppliesDefaults(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewToolService(factory)

	uow.tools.On("Create", mock.Anything, mock.MatchedBy(func(tool *entity.Tool) bool {
		return tool.TrialDays == 7 && tool.Category == "keyword-research" && tool.IsActive
	})).Return(nil)

	res, err := svc.CreateTool(context.Background(), &dto.CreateToolRequest{
		Name:  "Keyword Research",
		Price: 4999,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Keyword Research", res.Name)
	assert.Equal(t, 7, res.TrialDays)
	assert.True(t, res.IsActive)
	uow.tools.AssertExpectations(t)
}

func TestUpdateTool_PartialUpdate(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewToolService(factory)

	toolId := uuid.New()
	newPrice := 5999.0
	updated := &entity.Tool{Id: toolId, Name: "Keyword Research", Price: newPrice, IsActive: true}

	uow.tools.On("UpdatePartial", mock.Anything, toolId, mock.MatchedBy(func(u *entity.ToolUpdate) bool {
		return u.Price != nil && *u.Price == newPrice && u.Name == nil
	})).Return(updated, nil)

	res, err := svc.UpdateTool(context.Background(), toolId, &dto.UpdateToolRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, newPrice, res.Price)
}

func TestUpdateTool_UnknownTool(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewToolService(factory)

	uow.tools.On("UpdatePartial", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.UpdateTool(context.Background(), uuid.New(), &dto.UpdateToolRequest{})

	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestGetActiveTools(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewToolService(factory)

	tools := []*entity.Tool{
		{Id: uuid.New(), Name: "Keyword Research", IsActive: true},
		{Id: uuid.New(), Name: "Listing Optimizer", IsActive: true},
	}
	uow.tools.On("FindAll", mock.Anything, mock.Anything).Return(tools, nil)

	res, err := svc.GetActiveTools(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
