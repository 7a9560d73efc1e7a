package mapper

import (
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"
)

type SubscriptionMapper struct {
	toolMapper *ToolMapper
}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{
		toolMapper: NewToolMapper(),
	}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		ToolId:                s.ToolId,
		Status:                entity.SubscriptionStatus(s.Status),
		SubscriptionType:      entity.SubscriptionType(s.SubscriptionType),
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		PaymentSubscriptionId: s.PaymentSubscriptionId,
		PaymentOrderId:        s.PaymentOrderId,
		Amount:                s.Amount,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
		Tool:                  m.toolMapper.ToEntity(s.Tool),
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		ToolId:                s.ToolId,
		Status:                string(s.Status),
		SubscriptionType:      string(s.SubscriptionType),
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		PaymentSubscriptionId: s.PaymentSubscriptionId,
		PaymentOrderId:        s.PaymentOrderId,
		Amount:                s.Amount,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
