package mocks

import (
	"context"

	"knowledgechat/internal/models"
	"knowledgechat/internal/repositories"
)

type UserRepositoryMock struct {
	GetFunc  func(ctx context.Context) (*models.UserProfile, error)
	SaveFunc func(ctx context.Context, profile *models.UserProfile) error
}

func (m *UserRepositoryMock) Get(ctx context.Context) (*models.UserProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return repositories.GuestProfile(), nil
}

func (m *UserRepositoryMock) Save(ctx context.Context, profile *models.UserProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, profile)
	}
	return nil
}
