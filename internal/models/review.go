package models

// Review is a client testimonial.
type Review struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Review  string `gorm:"type:text" json:"review"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}

// TableName returns the database table for reviews.
func (Review) TableName() string { return "reviews" }
