package models

// Message is a contact submission. The read flag is the only status that
// changes after creation.
type Message struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `gorm:"type:text" json:"message"`
	Source  string `json:"source"`
	Read    bool   `json:"read"`
}

// TableName returns the database table for messages.
func (Message) TableName() string { return "messages" }
