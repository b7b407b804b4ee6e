package models

import "time"

// Deployment records one project that was deployed to the preview, together
// with the commit of its snapshot in the local history repository.
type Deployment struct {
	ID         uint   `gorm:"primaryKey"`
	TurnID     string `gorm:"size:64;index"`
	FileCount  int    `gorm:"not null"`
	FilesJSON  string `gorm:"type:text"`
	CommitHash string `gorm:"size:64"`
	CreatedAt  time.Time
}
