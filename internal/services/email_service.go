package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"knowledgechat/internal/models"
)

var emailFolders = []string{"inbox", "sent", "drafts", "trash"}

type EmailService interface {
	Startup(ctx context.Context)
	Folders() []string
	List(folder string) ([]models.Email, error)
	Open(id string) (*models.Email, error)
	Compose(to, subject, body string) (*models.Email, error)
	Trash(id string) error
}

type emailService struct {
	users UserService
	ctx   context.Context

	mu     sync.Mutex
	emails []models.Email
}

func NewEmailService(users UserService) EmailService {
	return &emailService{
		users: users,
		emails: []models.Email{
			{ID: "1", Folder: "inbox", Sender: "Studio AI Engine", Subject: "Build Successful: Landing Page v2", Preview: "Your latest deployment is live at studio-preview-99.web.app. The assets were optimized successfully.", Time: "10:45 AM", IsRead: false, Avatar: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=100"},
			{ID: "2", Folder: "inbox", Sender: "Community Manager", Subject: "Trending App: PixelQuest Pro", Preview: "Congratulations! Your community app PixelQuest has reached 5K downloads in just 2 days.", Time: "Yesterday", IsRead: true, Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100"},
		},
	}
}

func (s *emailService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *emailService) Folders() []string {
	out := make([]string, len(emailFolders))
	copy(out, emailFolders)
	return out
}

func (s *emailService) List(folder string) ([]models.Email, error) {
	if !validFolder(folder) {
		return nil, errors.New("unknown folder: " + folder)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Email
	for _, e := range s.emails {
		if e.Folder == folder {
			out = append(out, e)
		}
	}
	return out, nil
}

// Open returns the email and marks it read.
func (s *emailService) Open(id string) (*models.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails[i].IsRead = true
			e := s.emails[i]
			return &e, nil
		}
	}
	return nil, errors.New("email not found: " + id)
}

// Compose files a new message under sent. There is no real mail backend.
func (s *emailService) Compose(to, subject, body string) (*models.Email, error) {
	if strings.TrimSpace(to) == "" {
		return nil, errors.New("recipient is required")
	}
	profile, err := s.users.Get()
	if err != nil {
		return nil, err
	}

	preview := body
	if len(preview) > 120 {
		preview = preview[:120]
	}
	email := models.Email{
		ID:      uuid.NewString(),
		Folder:  "sent",
		Sender:  profile.Name,
		Subject: subject,
		Preview: preview,
		Body:    body,
		Time:    time.Now().Format("3:04 PM"),
		IsRead:  true,
		Avatar:  profile.Avatar,
	}

	s.mu.Lock()
	s.emails = append(s.emails, email)
	s.mu.Unlock()
	return &email, nil
}

func (s *emailService) Trash(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails[i].Folder = "trash"
			return nil
		}
	}
	return errors.New("email not found: " + id)
}

func validFolder(folder string) bool {
	for _, f := range emailFolders {
		if f == folder {
			return true
		}
	}
	return false
}
