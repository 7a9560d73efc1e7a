package service

import (
	"context"
	"testing"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPerformResearch_PersistsHistoryAndUsage(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewResearchService(factory, nil)

	userId := uuid.New()
	keywordTool := &entity.Tool{Id: uuid.New(), Category: "keyword-research", IsActive: true}

	uow.research.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.KeywordResearch) bool {
		return r.UserId == userId && r.SeedKeyword == "headphones" && len(r.Results.Amazon) == 5
	})).Return(nil)
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(keywordTool, nil)
	uow.usage.On("Create", mock.Anything, mock.MatchedBy(func(stat *entity.UsageStat) bool {
		return stat.UserId == userId && stat.ToolId == keywordTool.Id &&
			stat.ActionType == entity.ActionTypeSearch
	})).Return(nil)

	res, err := svc.PerformResearch(context.Background(), userId, &dto.KeywordResearchRequest{
		SeedKeyword: "headphones",
		Platforms:   []string{"amazon", "flipkart"},
	})

	assert.NoError(t, err)
	assert.Len(t, res.Amazon, 5)
	assert.Len(t, res.Flipkart, 5)
	assert.Equal(t, "headphones wireless", res.Amazon[0].Keyword)
	assert.Equal(t, 45000, res.Amazon[0].Volume)
	assert.Equal(t, 27000, res.Flipkart[0].Volume)
	uow.research.AssertExpectations(t)
	uow.usage.AssertExpectations(t)
}

func TestPerformResearch_EmptyPlatformsStillRecorded(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewResearchService(factory, nil)

	uow.research.On("Create", mock.Anything, mock.Anything).Return(nil)
	uow.tools.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	res, err := svc.PerformResearch(context.Background(), uuid.New(), &dto.KeywordResearchRequest{
		SeedKeyword: "headphones",
		Platforms:   []string{},
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Amazon)
	assert.Empty(t, res.Flipkart)
	uow.research.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	// No registered keyword tool means no usage event.
	uow.usage.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetHistory_NewestFirstWithLimit(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewResearchService(factory, nil)

	userId := uuid.New()
	rows := []*entity.KeywordResearch{
		{Id: uuid.New(), UserId: userId, SeedKeyword: "laptop stand", Platforms: []string{"amazon"}},
		{Id: uuid.New(), UserId: userId, SeedKeyword: "headphones", Platforms: []string{"amazon", "flipkart"}},
	}
	uow.research.On("FindAll", mock.Anything, mock.Anything).Return(rows, nil)

	res, err := svc.GetHistory(context.Background(), userId, 20)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "laptop stand", res[0].SeedKeyword)
}

func TestGetHistory_DefaultsLimitToTen(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewResearchService(factory, nil)

	uow.research.On("FindAll", mock.Anything, mock.MatchedBy(func(specs []specification.Specification) bool {
		for _, s := range specs {
			if p, ok := s.(specification.Pagination); ok {
				return p.Limit == 10
			}
		}
		return false
	})).Return([]*entity.KeywordResearch{}, nil)

	res, err := svc.GetHistory(context.Background(), uuid.New(), 0)

	assert.NoError(t, err)
	assert.Empty(t, res)
	uow.research.AssertExpectations(t)
}
