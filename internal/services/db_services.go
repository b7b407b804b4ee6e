package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"knowledgechat/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
// Fields use plural names (e.g., Users) to align with Go conventions
// seen in service/store containers.
type DbServices struct {
	Users       UserService
	Settings    AppSettingsService
	Deployments *DeploymentService
}

// StartDbServices propagates the runtime context to every contained service.
func (s *DbServices) StartDbServices(ctx context.Context) error {
	s.Users.Startup(ctx)
	s.Settings.Startup(ctx)
	if err := s.Deployments.Startup(ctx); err != nil {
		return fmt.Errorf("start deployment service: %w", err)
	}
	return nil
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, snapshotDir string) *DbServices {
	userRepo := repositories.NewUserRepository(db)
	settingsRepo := repositories.NewAppSettingsRepository(db)
	deploymentRepo := repositories.NewDeploymentRepository(db)

	return &DbServices{
		Users:       NewUserService(userRepo),
		Settings:    NewAppSettingsService(settingsRepo),
		Deployments: NewDeploymentService(deploymentRepo, snapshotDir),
	}
}
