package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"knowledgechat/internal/models"
)

// cardCodes maps card type to the serial prefix stamped on issued cards.
var cardCodes = map[string]string{
	"student":     "STU",
	"teacher":     "TCH",
	"doctor":      "DOC",
	"admin":       "MNG",
	"association": "ASC",
	"restaurant":  "RST",
	"security":    "SEC",
	"vip":         "VIP",
}

type IDCardService interface {
	Startup(ctx context.Context)
	CardTypes() []string
	Issue(cardType, city, extraField, bloodType, gender string) (*models.IDCard, error)
}

type idCardService struct {
	users UserService
	ctx   context.Context
	now   func() time.Time
}

func NewIDCardService(users UserService) IDCardService {
	return &idCardService{users: users, now: time.Now}
}

func (s *idCardService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *idCardService) CardTypes() []string {
	return []string{"student", "teacher", "doctor", "admin", "association", "restaurant", "security", "vip"}
}

// Issue mints a card for the active profile. The serial is
// PREFIX-<last 6 digits of unix millis><3-digit random>, issue date is today
// and expiry is two years out.
func (s *idCardService) Issue(cardType, city, extraField, bloodType, gender string) (*models.IDCard, error) {
	code, ok := cardCodes[strings.ToLower(strings.TrimSpace(cardType))]
	if !ok {
		return nil, fmt.Errorf("unknown card type: %s", cardType)
	}

	profile, err := s.users.Get()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	issued := s.now()
	return &models.IDCard{
		CardType:   strings.ToLower(strings.TrimSpace(cardType)),
		IDNumber:   generateCardID(code, issued),
		Name:       profile.Name,
		Job:        profile.Job,
		City:       city,
		Gender:     gender,
		BloodType:  bloodType,
		ExtraField: extraField,
		PhotoURL:   profile.Avatar,
		IssueDate:  issued.Format("2006-01-02"),
		ExpiryDate: issued.AddDate(2, 0, 0).Format("2006-01-02"),
	}, nil
}

func generateCardID(code string, issued time.Time) string {
	millis := fmt.Sprintf("%d", issued.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("%s-%s%d", code, millis, rand.Intn(900)+100)
}
