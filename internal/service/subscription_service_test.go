package service

import (
	"context"
	"testing"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscribe_CreatesOneYearSubscription(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewSubscriptionService(factory, nil)

	userId := uuid.New()
	toolId := uuid.New()
	tool := &entity.Tool{Id: toolId, Name: "Keyword Research", Price: 4999, IsActive: true}

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit").Return(nil)
	uow.On("Rollback").Return(nil)
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(tool, nil)
	uow.subs.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	uow.subs.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	res, err := svc.Subscribe(context.Background(), userId, &dto.CreateSubscriptionRequest{ToolId: toolId.String()})

	assert.NoError(t, err)
	assert.Equal(t, userId, res.UserId)
	assert.Equal(t, toolId, res.ToolId)
	assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
	assert.NotNil(t, res.Amount)
	assert.Equal(t, tool.Price, *res.Amount)
	assert.NotNil(t, res.EndDate)
	assert.WithinDuration(t, res.StartDate.AddDate(0, 0, 365), *res.EndDate, time.Second)
	assert.NotNil(t, res.Tool)

	uow.subs.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*entity.Subscription"))
	uow.AssertCalled(t, "Commit")
}

func TestSubscribe_ConflictOnExistingActive(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewSubscriptionService(factory, nil)

	userId := uuid.New()
	toolId := uuid.New()
	tool := &entity.Tool{Id: toolId, Price: 4999, IsActive: true}
	existing := &entity.Subscription{Id: uuid.New(), UserId: userId, ToolId: toolId, Status: entity.SubscriptionStatusActive}

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback").Return(nil)
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(tool, nil)
	uow.subs.On("FindOne", mock.Anything, mock.Anything).Return(existing, nil)

	_, err := svc.Subscribe(context.Background(), userId, &dto.CreateSubscriptionRequest{ToolId: toolId.String()})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	uow.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit")
}

func TestSubscribe_UnknownTool(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewSubscriptionService(factory, nil)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback").Return(nil)
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Subscribe(context.Background(), uuid.New(), &dto.CreateSubscriptionRequest{ToolId: uuid.New().String()})

	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestSubscribe_MalformedToolId(t *testing.T) {
	factory, _ := newMockUow()
	svc := NewSubscriptionService(factory, nil)

	_, err := svc.Subscribe(context.Background(), uuid.New(), &dto.CreateSubscriptionRequest{ToolId: "not-a-uuid"})

	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestGetUserSubscriptions_MapsToolRelation(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewSubscriptionService(factory, nil)

	userId := uuid.New()
	toolId := uuid.New()
	subs := []*entity.Subscription{
		{
			Id:     uuid.New(),
			UserId: userId,
			ToolId: toolId,
			Status: entity.SubscriptionStatusActive,
			Tool:   &entity.Tool{Id: toolId, Name: "Keyword Research", Price: 4999},
		},
	}
	uow.subs.On("FindAllWithTool", mock.Anything, mock.Anything).Return(subs, nil)

	res, err := svc.GetUserSubscriptions(context.Background(), userId)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.NotNil(t, res[0].Tool)
	assert.Equal(t, "Keyword Research", res[0].Tool.Name)
}
