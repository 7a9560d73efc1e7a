package mapper

import (
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                u.Id,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfileImageUrl:   u.ProfileImageUrl,
		Role:              entity.UserRole(u.Role),
		Status:            entity.UserStatus(u.Status),
		TrialStartDate:    u.TrialStartDate,
		TrialEndDate:      u.TrialEndDate,
		IsTrialActive:     u.IsTrialActive,
		HasCompletedTrial: u.HasCompletedTrial,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                u.Id,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfileImageUrl:   u.ProfileImageUrl,
		Role:              string(u.Role),
		Status:            string(u.Status),
		TrialStartDate:    u.TrialStartDate,
		TrialEndDate:      u.TrialEndDate,
		IsTrialActive:     u.IsTrialActive,
		HasCompletedTrial: u.HasCompletedTrial,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
