package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"aurafolio/internal/models"
	"aurafolio/internal/realtime"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsID addresses the single settings row.
const settingsID = "main"

// DefaultSettings returns the profile values used before any admin edit.
func DefaultSettings() models.Settings {
	return models.Settings{
		ID:           settingsID,
		ProfileImage: "",
		ResumeURL:    "",
		Linkedin:     "https://linkedin.com/in/aurangzebsunny",
		Github:       "https://github.com/aurangzebsunny",
		Instagram:    "https://instagram.com/aurangzebsunny",
		Email:        "aurangzeb@example.com",
		Phone:        "+1234567890",
		Whatsapp:     "+1234567890",
	}
}

// GetSettings loads the settings row. A missing row means the admin has not
// saved a profile yet and resolves to the defaults; any other read failure
// resolves to the empty record, logged.
func (s *Store) GetSettings(ctx context.Context) models.Settings {
	var row models.Settings
	err := s.db.WithContext(ctx).First(&row, "id = ?", settingsID).Error
	if err == nil {
		return row
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultSettings()
	}
	s.log.Error("failed to load settings", slog.String("error", err.Error()))
	return models.Settings{}
}

// UpdateSettings merges the patch into the current settings and upserts the
// singleton row.
func (s *Store) UpdateSettings(ctx context.Context, patch map[string]any) (*models.Settings, error) {
	row := s.GetSettings(ctx)
	applySettingsPatch(&row, patch)
	row.ID = settingsID
	row.UpdatedAt = time.Now().UTC()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		s.log.Error("failed to save settings", slog.String("error", err.Error()))
		return nil, err
	}
	s.publish(ctx, TableSettings, realtime.EventUpdate, row)
	return &row, nil
}

func applySettingsPatch(row *models.Settings, patch map[string]any) {
	for k, v := range patch {
		str, ok := v.(string)
		if !ok {
			continue
		}
		switch k {
		case "profileImage":
			row.ProfileImage = str
		case "resumeUrl":
			row.ResumeURL = str
		case "linkedin":
			row.Linkedin = str
		case "github":
			row.Github = str
		case "instagram":
			row.Instagram = str
		case "email":
			row.Email = str
		case "phone":
			row.Phone = str
		case "whatsapp":
			row.Whatsapp = str
		}
	}
}
