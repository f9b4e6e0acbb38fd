package models

// QA is an FAQ entry. Order determines display sequence in the UI.
type QA struct {
	Base
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// TableName returns the database table for Q&A entries.
func (QA) TableName() string { return "qas" }
