package mocks

import (
	"context"

	"knowledgechat/internal/models"
)

type DeploymentRepositoryMock struct {
	CreateFunc func(ctx context.Context, deployment *models.Deployment) error
	ListFunc   func(ctx context.Context, limit int) ([]models.Deployment, error)
}

func (m *DeploymentRepositoryMock) Create(ctx context.Context, deployment *models.Deployment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, deployment)
	}
	return nil
}

func (m *DeploymentRepositoryMock) List(ctx context.Context, limit int) ([]models.Deployment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return []models.Deployment{}, nil
}
