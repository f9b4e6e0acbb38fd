package models

import "time"

// Settings is the site-wide profile record. Exactly one row exists,
// addressed by a constant ID.
type Settings struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ProfileImage string    `json:"profileImage"`
	ResumeURL    string    `json:"resumeUrl"`
	Linkedin     string    `json:"linkedin"`
	Github       string    `json:"github"`
	Instagram    string    `json:"instagram"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Whatsapp     string    `json:"whatsapp"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the database table for settings.
func (Settings) TableName() string { return "settings" }
