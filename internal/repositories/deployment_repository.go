package repositories

import (
	"context"

	"gorm.io/gorm"

	"knowledgechat/internal/models"
)

type DeploymentRepository interface {
	Create(ctx context.Context, deployment *models.Deployment) error
	List(ctx context.Context, limit int) ([]models.Deployment, error)
}

type deploymentRepository struct {
	db *gorm.DB
}

func NewDeploymentRepository(db *gorm.DB) DeploymentRepository {
	return &deploymentRepository{db: db}
}

func (r *deploymentRepository) Create(ctx context.Context, deployment *models.Deployment) error {
	return r.db.WithContext(ctx).Create(deployment).Error
}

func (r *deploymentRepository) List(ctx context.Context, limit int) ([]models.Deployment, error) {
	if limit <= 0 {
		limit = 50
	}
	var deployments []models.Deployment
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&deployments).Error
	return deployments, err
}
