package implementation

import (
	"context"
	"errors"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/mapper"
	"sellerkit-be/internal/model"
	"sellerkit-be/internal/repository/contract"
	"sellerkit-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToolRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ToolMapper
}

func NewToolRepository(db *gorm.DB) contract.ToolRepository {
	return &ToolRepositoryImpl{
		db:     db,
		mapper: mapper.NewToolMapper(),
	}
}

func (r *ToolRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ToolRepositoryImpl) Create(ctx context.Context, tool *entity.Tool) error {
	m := r.mapper.ToModel(tool)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tool = *r.mapper.ToEntity(m)
	return nil
}

func (r *ToolRepositoryImpl) UpdatePartial(ctx context.Context, id uuid.UUID, update *entity.ToolUpdate) (*entity.Tool, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Icon != nil {
		fields["icon"] = *update.Icon
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.TrialDays != nil {
		fields["trial_days"] = *update.TrialDays
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Tool{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	var m model.Tool
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ToolRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tool, error) {
	var m model.Tool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ToolRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tool, error) {
	var models []*model.Tool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Tool, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
