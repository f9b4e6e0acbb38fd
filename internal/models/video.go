package models

// Video is an external video reference.
type Video struct {
	Base
	Title       string `gorm:"not null" json:"title"`
	YoutubeURL  string `json:"youtubeUrl"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName returns the database table for videos.
func (Video) TableName() string { return "videos" }
