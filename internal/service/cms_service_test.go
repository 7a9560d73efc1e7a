package service

import (
	"context"
	"encoding/json"
	"testing"

	"sellerkit-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetSection(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewCmsService(factory)

	content := &entity.CmsContent{
		Id:      uuid.New(),
		Section: "hero",
		Content: json.RawMessage(`{"title":"Grow your marketplace sales"}`),
	}
	uow.cms.On("FindBySection", mock.Anything, "hero").Return(content, nil)

	res, err := svc.GetSection(context.Background(), "hero")

	assert.NoError(t, err)
	assert.Equal(t, "hero", res.Section)
	assert.JSONEq(t, `{"title":"Grow your marketplace sales"}`, string(res.Content))
}

func TestGetSection_UnknownSection(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewCmsService(factory)

	uow.cms.On("FindBySection", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetSection(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestUpsertSection(t *testing.T) {
	factory, uow := newMockUow()
	svc := NewCmsService(factory)

	payload := json.RawMessage(`{"title":"Updated"}`)
	stored := &entity.CmsContent{Id: uuid.New(), Section: "hero", Content: payload}
	uow.cms.On("Upsert", mock.Anything, "hero", payload).Return(stored, nil)

	res, err := svc.UpsertSection(context.Background(), "hero", payload)

	assert.NoError(t, err)
	assert.Equal(t, "hero", res.Section)
	uow.cms.AssertExpectations(t)
}
