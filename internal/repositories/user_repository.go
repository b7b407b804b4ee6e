package repositories

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"knowledgechat/internal/models"
)

type UserRepository interface {
	Get(ctx context.Context) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GuestProfile is the documented fallback used when no profile row exists yet.
func GuestProfile() *models.UserProfile {
	return &models.UserProfile{
		ID:        1,
		ProfileID: fmt.Sprintf("GUEST-%d", rand.Intn(1000)),
		Name:      "Guest User",
		Avatar:    "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200",
		Level:     1,
		Diamonds:  500,
		Job:       "Explorer",
		Role:      "user",
		JoinDate:  time.Now().Format(time.RFC3339),
		IsPremium: false,
	}
}

func (r *userRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GuestProfile(), nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	// Single-row table (ID=1)
	profile.ID = 1
	return r.db.WithContext(ctx).Save(profile).Error
}
