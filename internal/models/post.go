package models

import "gorm.io/datatypes"

// Post is a blog article.
type Post struct {
	Base
	Title     string                      `gorm:"not null" json:"title"`
	Excerpt   string                      `gorm:"type:text" json:"excerpt"`
	Content   string                      `gorm:"type:text" json:"content"`
	Thumbnail string                      `json:"thumbnail"`
	Author    string                      `json:"author"`
	ReadTime  string                      `json:"readTime"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
}

// TableName returns the database table for posts.
func (Post) TableName() string { return "posts" }
