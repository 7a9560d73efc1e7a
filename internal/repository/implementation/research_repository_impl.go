package implementation

import (
	"context"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/mapper"
	"sellerkit-be/internal/model"
	"sellerkit-be/internal/repository/contract"
	"sellerkit-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ResearchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResearchMapper
}

func NewResearchRepository(db *gorm.DB) contract.ResearchRepository {
	return &ResearchRepositoryImpl{
		db:     db,
		mapper: mapper.NewResearchMapper(),
	}
}

func (r *ResearchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResearchRepositoryImpl) Create(ctx context.Context, research *entity.KeywordResearch) error {
	m, err := r.mapper.ToModel(research)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*research = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResearchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeywordResearch, error) {
	var models []*model.KeywordResearch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KeywordResearch, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
