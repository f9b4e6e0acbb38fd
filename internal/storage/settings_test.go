package storage

import (
	"context"
	"testing"

	"aurafolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	s := setupStoreTest(t)

	settings := s.GetSettings(context.Background())
	assert.Equal(t, "main", settings.ID)
	assert.Equal(t, "https://linkedin.com/in/aurangzebsunny", settings.Linkedin)
	assert.Equal(t, "https://github.com/aurangzebsunny", settings.Github)
	assert.Equal(t, "https://instagram.com/aurangzebsunny", settings.Instagram)
	assert.Equal(t, "aurangzeb@example.com", settings.Email)
}

func TestGetSettingsReadFailureYieldsEmptyRecord(t *testing.T) {
	s := setupStoreTest(t)
	ctx := context.Background()

	require.NoError(t, s.db.Exec("DROP TABLE settings").Error)

	settings := s.GetSettings(ctx)
	assert.Equal(t, models.Settings{}, settings,
		"only not-found maps to defaults; other failures yield the empty record")
}

func TestUpdateSettingsUpsertsSingleton(t *testing.T) {
	s := setupStoreTest(t)
	ctx := context.Background()

	first, err := s.UpdateSettings(ctx, map[string]any{
		"resumeUrl": "https://example.com/cv.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "main", first.ID)
	assert.Equal(t, "https://example.com/cv.pdf", first.ResumeURL)
	// Defaults survive a partial update.
	assert.Equal(t, "https://linkedin.com/in/aurangzebsunny", first.Linkedin)

	second, err := s.UpdateSettings(ctx, map[string]any{
		"github": "newhandle",
	})
	require.NoError(t, err)
	assert.Equal(t, "newhandle", second.Github)
	assert.Equal(t, "https://example.com/cv.pdf", second.ResumeURL, "earlier edit preserved")

	// Still exactly one row.
	var count int64
	require.NoError(t, s.db.Table(TableSettings).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
