package models

import "gorm.io/datatypes"

// Job is an employment history entry.
type Job struct {
	Base
	Title        string                      `gorm:"not null" json:"title"`
	Company      string                      `json:"company"`
	Period       string                      `json:"period"`
	Description  string                      `gorm:"type:text" json:"description"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	Current      bool                        `json:"current"`
}

// TableName returns the database table for jobs.
func (Job) TableName() string { return "jobs" }
