package models

import "time"

type AppSettings struct {
	ID        uint      `gorm:"primaryKey" json:"-"`                // single-row table (ID=1)
	Theme     string    `gorm:"not null;default:dark" json:"theme"` // "light" | "dark" | "system"
	Locale    string    `gorm:"not null;default:ar" json:"locale"`  // "en" | "ar"
	UpdatedAt time.Time `json:"-"`
}

// Direction returns the text direction the renderer should use for the
// current locale.
func (s *AppSettings) Direction() string {
	if s != nil && s.Locale == "ar" {
		return "rtl"
	}
	return "ltr"
}
