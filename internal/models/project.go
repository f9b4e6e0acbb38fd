package models

import "gorm.io/datatypes"

// Project is a portfolio work item. Category is a free-text label the UI
// matches against its filter set.
type Project struct {
	Base
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Image       string                      `json:"image"`
	Category    string                      `json:"category"`
	Featured    bool                        `json:"featured"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	LiveURL     string                      `json:"liveUrl"`
	GithubURL   string                      `json:"githubUrl"`
}

// TableName returns the database table for projects.
func (Project) TableName() string { return "projects" }
