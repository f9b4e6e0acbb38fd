package storage

import (
	"context"

	"aurafolio/internal/models"
)

// Projects

func (s *Store) GetProjects(ctx context.Context) []models.Project {
	return listAll[models.Project](ctx, s)
}

func (s *Store) AddProject(ctx context.Context, p models.Project) (*models.Project, error) {
	return insertRow(ctx, s, &p)
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch map[string]any) (*models.Project, error) {
	return updateRow[models.Project](ctx, s, id, patch)
}

func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Project](ctx, s, id)
}

// Posts

func (s *Store) GetPosts(ctx context.Context) []models.Post {
	return listAll[models.Post](ctx, s)
}

func (s *Store) AddPost(ctx context.Context, p models.Post) (*models.Post, error) {
	return insertRow(ctx, s, &p)
}

func (s *Store) UpdatePost(ctx context.Context, id string, patch map[string]any) (*models.Post, error) {
	return updateRow[models.Post](ctx, s, id, patch)
}

func (s *Store) DeletePost(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Post](ctx, s, id)
}

// Videos

func (s *Store) GetVideos(ctx context.Context) []models.Video {
	return listAll[models.Video](ctx, s)
}

func (s *Store) AddVideo(ctx context.Context, v models.Video) (*models.Video, error) {
	return insertRow(ctx, s, &v)
}

func (s *Store) UpdateVideo(ctx context.Context, id string, patch map[string]any) (*models.Video, error) {
	return updateRow[models.Video](ctx, s, id, patch)
}

func (s *Store) DeleteVideo(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Video](ctx, s, id)
}

// Certificates

func (s *Store) GetCertificates(ctx context.Context) []models.Certificate {
	return listAll[models.Certificate](ctx, s)
}

func (s *Store) AddCertificate(ctx context.Context, c models.Certificate) (*models.Certificate, error) {
	return insertRow(ctx, s, &c)
}

func (s *Store) DeleteCertificate(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Certificate](ctx, s, id)
}

// Jobs

func (s *Store) GetJobs(ctx context.Context) []models.Job {
	return listAll[models.Job](ctx, s)
}

func (s *Store) AddJob(ctx context.Context, j models.Job) (*models.Job, error) {
	return insertRow(ctx, s, &j)
}

func (s *Store) UpdateJob(ctx context.Context, id string, patch map[string]any) (*models.Job, error) {
	return updateRow[models.Job](ctx, s, id, patch)
}

func (s *Store) DeleteJob(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Job](ctx, s, id)
}

// Reviews

func (s *Store) GetReviews(ctx context.Context) []models.Review {
	return listAll[models.Review](ctx, s)
}

func (s *Store) AddReview(ctx context.Context, r models.Review) (*models.Review, error) {
	return insertRow(ctx, s, &r)
}

func (s *Store) DeleteReview(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Review](ctx, s, id)
}

// Q&As

func (s *Store) GetQAs(ctx context.Context) []models.QA {
	return listAll[models.QA](ctx, s)
}

func (s *Store) AddQA(ctx context.Context, q models.QA) (*models.QA, error) {
	return insertRow(ctx, s, &q)
}

func (s *Store) UpdateQA(ctx context.Context, id string, patch map[string]any) (*models.QA, error) {
	return updateRow[models.QA](ctx, s, id, patch)
}

func (s *Store) DeleteQA(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.QA](ctx, s, id)
}

// Messages

func (s *Store) GetMessages(ctx context.Context) []models.Message {
	return listAll[models.Message](ctx, s)
}

func (s *Store) AddMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	return insertRow(ctx, s, &m)
}

func (s *Store) UpdateMessage(ctx context.Context, id string, patch map[string]any) (*models.Message, error) {
	return updateRow[models.Message](ctx, s, id, patch)
}

func (s *Store) DeleteMessage(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Message](ctx, s, id)
}
