package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"knowledgechat/internal/models"
)

const liveChatDepth = 16

var ErrUnknownGift = errors.New("unknown gift")

type SocialService interface {
	Startup(ctx context.Context)
	Streamers() []models.Streamer
	Gifts() []models.Gift
	SendGift(giftID string) (*models.UserProfile, error)
	SendChat(text string) ([]models.LiveChatEntry, error)
	LiveChat() []models.LiveChatEntry
}

type socialService struct {
	users UserService
	ctx   context.Context

	mu        sync.Mutex
	streamers []models.Streamer
	gifts     []models.Gift
	chat      []models.LiveChatEntry
}

func NewSocialService(users UserService) SocialService {
	return &socialService{
		users: users,
		streamers: []models.Streamer{
			{ID: "1", Name: "Khalid Al-Muntasir", Avatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200", Cover: "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=800", Viewers: "1M", Diamonds: 999999, Level: 100, Tags: []string{"CEO", "Tech"}, Role: "admin", JoinDate: "2023-01-01"},
			{ID: "2", Name: "Sara_Admin", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200", Cover: "https://images.unsplash.com/photo-1520333789090-1afc82db536a?w=800", Viewers: "4.2K", Diamonds: 15200, Level: 45, Tags: []string{"Support"}, Role: "admin", JoinDate: "2024-05-01"},
			{ID: "3", Name: "New_Creator", Avatar: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?w=200", Cover: "https://images.unsplash.com/photo-1574672280600-4accfa5b6f98?w=800", Viewers: "1.8K", Diamonds: 8500, Level: 32, Tags: []string{"Art"}, Role: "user", JoinDate: time.Now().Format("2006-01-02")},
		},
		gifts: []models.Gift{
			{ID: "rose", Icon: "🌹", Label: "Rose", Cost: 10},
			{ID: "heart", Icon: "❤️", Label: "Heart", Cost: 50},
			{ID: "diamond", Icon: "💎", Label: "Diamond", Cost: 100},
			{ID: "rocket", Icon: "🚀", Label: "Rocket", Cost: 500},
			{ID: "crown", Icon: "👑", Label: "Crown", Cost: 1000},
		},
	}
}

func (s *socialService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *socialService) Streamers() []models.Streamer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Streamer, len(s.streamers))
	copy(out, s.streamers)
	return out
}

func (s *socialService) Gifts() []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Gift, len(s.gifts))
	copy(out, s.gifts)
	return out
}

// SendGift debits the gift cost from the profile and drops a highlighted
// entry into the live chat feed.
func (s *socialService) SendGift(giftID string) (*models.UserProfile, error) {
	gift, ok := s.findGift(giftID)
	if !ok {
		return nil, ErrUnknownGift
	}

	profile, err := s.users.AdjustDiamonds(-gift.Cost)
	if err != nil {
		return nil, err
	}

	s.appendChat(models.LiveChatEntry{
		User:   profile.Name,
		Text:   fmt.Sprintf("sent %s", gift.Label),
		IsGift: true,
		Icon:   gift.Icon,
		Role:   profile.Role,
	})
	return profile, nil
}

func (s *socialService) SendChat(text string) ([]models.LiveChatEntry, error) {
	if text == "" {
		return nil, errors.New("message is empty")
	}
	profile, err := s.users.Get()
	if err != nil {
		return nil, err
	}
	s.appendChat(models.LiveChatEntry{User: profile.Name, Text: text, Role: profile.Role})
	return s.LiveChat(), nil
}

func (s *socialService) LiveChat() []models.LiveChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LiveChatEntry, len(s.chat))
	copy(out, s.chat)
	return out
}

func (s *socialService) findGift(id string) (models.Gift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.gifts {
		if g.ID == id {
			return g, true
		}
	}
	return models.Gift{}, false
}

func (s *socialService) appendChat(entry models.LiveChatEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, entry)
	if len(s.chat) > liveChatDepth {
		s.chat = s.chat[len(s.chat)-liveChatDepth:]
	}
}
