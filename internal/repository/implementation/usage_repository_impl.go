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

type UsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageMapper
}

func NewUsageRepository(db *gorm.DB) contract.UsageRepository {
	return &UsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageMapper(),
	}
}

func (r *UsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageRepositoryImpl) Create(ctx context.Context, stat *entity.UsageStat) error {
	m := r.mapper.ToModel(stat)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*stat = *r.mapper.ToEntity(m)
	return nil
}

func (r *UsageRepositoryImpl) CountByAction(ctx context.Context, specs ...specification.Specification) (map[entity.ActionType]int, error) {
	type actionCount struct {
		ActionType string
		Count      int64
	}
	var rows []actionCount

	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageStat{}), specs...)
	err := query.
		Select("action_type, COUNT(*) as count").
		Group("action_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.ActionType]int, len(rows))
	for _, row := range rows {
		counts[entity.ActionType(row.ActionType)] = int(row.Count)
	}
	return counts, nil
}

func (r *UsageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageStat{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
