// FILE: internal/service/cms_service.go
package service

import (
	"context"
	"encoding/json"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/repository/unitofwork"
)

type ICmsService interface {
	GetSection(ctx context.Context, section string) (*dto.CmsContentResponse, error)
	UpsertSection(ctx context.Context, section string, content json.RawMessage) (*dto.CmsContentResponse, error)
}

type cmsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCmsService(uowFactory unitofwork.RepositoryFactory) ICmsService {
	return &cmsService{uowFactory: uowFactory}
}

func (s *cmsService) GetSection(ctx context.Context, section string) (*dto.CmsContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.CmsRepository().FindBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrSectionNotFound
	}
	return mapCmsResponse(content), nil
}

func (s *cmsService) UpsertSection(ctx context.Context, section string, content json.RawMessage) (*dto.CmsContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	row, err := uow.CmsRepository().Upsert(ctx, section, content)
	if err != nil {
		return nil, err
	}
	return mapCmsResponse(row), nil
}

func mapCmsResponse(content *entity.CmsContent) *dto.CmsContentResponse {
	return &dto.CmsContentResponse{
		Id:        content.Id,
		Section:   content.Section,
		Content:   content.Content,
		UpdatedAt: content.UpdatedAt,
	}
}
