// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/repository/specification"
	"sellerkit-be/internal/repository/unitofwork"

	"sellerkit-be/pkg/events"
	pktNats "sellerkit-be/pkg/nats"

	"github.com/google/uuid"
)

const trialPeriodDays = 7

type IAuthService interface {
	// SyncUser upserts the caller from identity provider claims and returns
	// the stored row. The first login opens the trial window.
	SyncUser(ctx context.Context, claims serverutils.IdentityClaims) (*dto.UserResponse, error)
	GetUserRole(ctx context.Context, userId uuid.UUID) (string, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *authService) SyncUser(ctx context.Context, claims serverutils.IdentityClaims) (*dto.UserResponse, error) {
	userId, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	trialEnd := now.AddDate(0, 0, trialPeriodDays)
	user := &entity.User{
		Id:              userId,
		Email:           claims.Email,
		FirstName:       optionalString(claims.FirstName),
		LastName:        optionalString(claims.LastName),
		ProfileImageUrl: optionalString(claims.ProfileImageUrl),
		Role:            entity.UserRoleSeller,
		Status:          entity.UserStatusActive,
		// Only persisted on insert; the conflict path keeps the stored
		// trial state and role.
		TrialStartDate: &now,
		TrialEndDate:   &trialEnd,
		IsTrialActive:  true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.UserRepository().Upsert(ctx, user); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
				"time":    now.Format(time.RFC822),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return mapUserResponse(user), nil
}

func (s *authService) GetUserRole(ctx context.Context, userId uuid.UUID) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return string(user.Role), nil
}

func mapUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:                user.Id,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		ProfileImageUrl:   user.ProfileImageUrl,
		Role:              string(user.Role),
		Status:            string(user.Status),
		TrialStartDate:    user.TrialStartDate,
		TrialEndDate:      user.TrialEndDate,
		IsTrialActive:     user.IsTrialActive,
		HasCompletedTrial: user.HasCompletedTrial,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
