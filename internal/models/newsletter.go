package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Newsletter is a mailing list subscription. Email uniqueness is enforced
// by the database.
type Newsletter struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribedAt"`
}

// TableName returns the database table for newsletter subscriptions.
func (Newsletter) TableName() string { return "newsletter" }

// BeforeCreate assigns a UUID when no ID has been set yet.
func (n *Newsletter) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
