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

func TestGetUserUsage_SummarizesPerAction(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewUsageService(factory)

	counts := map[entity.ActionType]int{
		entity.ActionTypeSearch: 3,
		entity.ActionTypeExport: 1,
	}
	uow.usage.On("CountByAction", mock.Anything, mock.Anything).Return(counts, nil)

	res, err := svc.GetUserUsage(context.Background(), uuid.New(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Searches)
	assert.Equal(t, 1, res.Exports)
	assert.Equal(t, 0, res.ApiCalls)
}

func TestRecordUsage_AppendsEvent(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewUsageService(factory)

	userId := uuid.New()
	toolId := uuid.New()
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Tool{Id: toolId}, nil)
	uow.usage.On("Create", mock.Anything, mock.MatchedBy(func(stat *entity.UsageStat) bool {
		return stat.UserId == userId && stat.ToolId == toolId && stat.ActionType == entity.ActionTypeExport
	})).Return(nil)

	err := svc.RecordUsage(context.Background(), userId, &dto.RecordUsageRequest{
		ToolId:     toolId.String(),
		ActionType: "export",
	})

	assert.NoError(t, err)
	uow.usage.AssertExpectations(t)
}

func TestRecordUsage_UnknownTool(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewUsageService(factory)

	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	err := svc.RecordUsage(context.Background(), uuid.New(), &dto.RecordUsageRequest{
		ToolId:     uuid.New().String(),
		ActionType: "export",
	})

	assert.ErrorIs(t, err, ErrToolNotFound)
}
