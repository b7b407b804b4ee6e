package models

import "time"

// UserProfile is the single persisted user document (ID=1). A guest default
// is materialized on first read when the row is missing.
type UserProfile struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	ProfileID string `gorm:"size:64" json:"id"`
	Name      string `gorm:"size:120" json:"name"`
	Avatar    string `gorm:"size:512" json:"avatar"`
	Level     int    `gorm:"not null;default:1" json:"level"`
	Diamonds  int64  `gorm:"not null;default:0" json:"diamonds"`
	Email     string `gorm:"size:255" json:"email"`
	Job       string `gorm:"size:120" json:"job"`
	Role      string `gorm:"size:32" json:"role"` // "admin" | "creator" | "user"
	JoinDate  string `gorm:"size:64" json:"joinDate"`
	IsPremium bool   `json:"isPremium"`
}
