package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"knowledgechat/internal/models"
	"knowledgechat/internal/repositories"
)

type UserService interface {
	Startup(ctx context.Context)
	Get() (*models.UserProfile, error)
	Update(profile *models.UserProfile) (*models.UserProfile, error)
	AdjustDiamonds(delta int64) (*models.UserProfile, error)
	Login(provider string) (*models.UserProfile, error)
}

type userService struct {
	users repositories.UserRepository
	ctx   context.Context
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *userService) Get() (*models.UserProfile, error) {
	return s.users.Get(context.Background())
}

func (s *userService) Update(profile *models.UserProfile) (*models.UserProfile, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}
	if err := s.users.Save(context.Background(), profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AdjustDiamonds applies a signed delta to the diamond balance, rejecting
// overdrafts.
func (s *userService) AdjustDiamonds(delta int64) (*models.UserProfile, error) {
	profile, err := s.Get()
	if err != nil {
		return nil, err
	}
	if profile.Diamonds+delta < 0 {
		return nil, errors.New("insufficient diamonds")
	}
	profile.Diamonds += delta
	return s.Update(profile)
}

// Login simulates a provider handshake: there is no real auth backend, the
// profile is simply upgraded the way the studio always has.
func (s *userService) Login(provider string) (*models.UserProfile, error) {
	if provider == "" {
		return nil, errors.New("provider is required")
	}
	profile, err := s.Get()
	if err != nil {
		return nil, err
	}
	profile.ProfileID = fmt.Sprintf("USR-REAL-%d", rand.Intn(1000))
	profile.Name = "Khalid Al-Muntasir"
	profile.Role = "admin"
	profile.IsPremium = true
	profile.Diamonds = 1000000
	return s.Update(profile)
}
