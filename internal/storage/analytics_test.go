package storage

import (
	"context"
	"testing"

	"aurafolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalyticsCounts(t *testing.T) {
	s := setupStoreTest(t)
	ctx := context.Background()

	_, err := s.AddProject(ctx, models.Project{Title: "P1"})
	require.NoError(t, err)
	_, err = s.AddProject(ctx, models.Project{Title: "P2"})
	require.NoError(t, err)
	_, err = s.AddPost(ctx, models.Post{Title: "B1"})
	require.NoError(t, err)
	_, err = s.AddVideo(ctx, models.Video{Title: "V1"})
	require.NoError(t, err)

	read, err := s.SubmitContact(ctx, ContactInput{Name: "A", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err)
	_, err = s.SubmitContact(ctx, ContactInput{Name: "B", Email: "b@x.com", Message: "yo"})
	require.NoError(t, err)
	_, err = s.UpdateMessage(ctx, read.ID, map[string]any{"read": true})
	require.NoError(t, err)

	got := s.GetAnalytics(ctx)
	assert.Equal(t, 2, got.TotalProjects)
	assert.Equal(t, 1, got.TotalPosts)
	assert.Equal(t, 1, got.TotalVideos)
	assert.Equal(t, 2, got.TotalMessages)
	assert.Equal(t, 1, got.UnreadMessages)
	assert.Equal(t, 0, got.TotalJobs)
}

func TestGetAnalyticsDegradesToZeroes(t *testing.T) {
	s := setupStoreTest(t)
	ctx := context.Background()

	_, err := s.AddProject(ctx, models.Project{Title: "P1"})
	require.NoError(t, err)

	require.NoError(t, s.db.Exec("DROP TABLE reviews").Error)

	got := s.GetAnalytics(ctx)
	assert.Equal(t, models.Analytics{}, got, "partial failure yields the zero record")
}
