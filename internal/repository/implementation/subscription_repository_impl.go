package implementation

import (
	"context"
	"errors"

	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/mapper"
	"sellerkit-be/internal/model"
	"sellerkit-be/internal/repository/contract"
	"sellerkit-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *entity.Subscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *entity.Subscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) FindAllWithTool(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Tool")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) ListUserSubscriptionRows(ctx context.Context) ([]*entity.UserSubscriptionRow, error) {
	var rows []*entity.UserSubscriptionRow

	err := r.db.WithContext(ctx).Table("subscriptions").
		Select(`
			subscriptions.id as subscription_id,
			subscriptions.user_id,
			subscriptions.tool_id,
			subscriptions.status,
			subscriptions.subscription_type,
			subscriptions.start_date,
			subscriptions.end_date,
			subscriptions.amount,
			tools.name as tool_name,
			tools.price as tool_price,
			tools.category as tool_category
		`).
		Joins("JOIN tools ON subscriptions.tool_id = tools.id").
		Where("subscriptions.status = ?", "active").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SubscriptionRepositoryImpl) SumActiveMonthlyRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Table("subscriptions").
		Joins("JOIN tools ON subscriptions.tool_id = tools.id").
		Where("subscriptions.status = ?", "active").
		Select("COALESCE(SUM(tools.price / 12), 0)").
		Scan(&total).Error
	return total, err
}
