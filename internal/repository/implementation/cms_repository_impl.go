package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/mapper"
	"sellerkit-be/internal/model"
	"sellerkit-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CmsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CmsMapper
}

func NewCmsRepository(db *gorm.DB) contract.CmsRepository {
	return &CmsRepositoryImpl{
		db:     db,
		mapper: mapper.NewCmsMapper(),
	}
}

func (r *CmsRepositoryImpl) FindBySection(ctx context.Context, section string) (*entity.CmsContent, error) {
	var m model.CmsContent
	if err := r.db.WithContext(ctx).Where("section = ?", section).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CmsRepositoryImpl) Upsert(ctx context.Context, section string, content json.RawMessage) (*entity.CmsContent, error) {
	m := &model.CmsContent{
		Id:      uuid.New(),
		Section: section,
		Content: datatypes.JSON(content),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}

	var fresh model.CmsContent
	if err := r.db.WithContext(ctx).Where("section = ?", section).First(&fresh).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&fresh), nil
}
