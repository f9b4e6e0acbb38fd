package storage

import (
	"context"
	"log/slog"

	"aurafolio/internal/models"

	"golang.org/x/sync/errgroup"
)

// GetAnalytics gathers dashboard counters from all content tables
// concurrently. If any fetch fails the whole result degrades to zeroes
// rather than mixing real and missing numbers.
func (s *Store) GetAnalytics(ctx context.Context) models.Analytics {
	var (
		projects []models.Project
		posts    []models.Post
		messages []models.Message
		videos   []models.Video
		certs    []models.Certificate
		jobs     []models.Job
		reviews  []models.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { projects, err = listRows[models.Project](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { posts, err = listRows[models.Post](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { messages, err = listRows[models.Message](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { videos, err = listRows[models.Video](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { certs, err = listRows[models.Certificate](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { jobs, err = listRows[models.Job](gctx, s, createdAtDesc); return })
	g.Go(func() (err error) { reviews, err = listRows[models.Review](gctx, s, createdAtDesc); return })

	if err := g.Wait(); err != nil {
		s.log.Error("failed to gather analytics", slog.String("error", err.Error()))
		return models.Analytics{}
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	return models.Analytics{
		TotalProjects:     len(projects),
		TotalPosts:        len(posts),
		TotalMessages:     len(messages),
		UnreadMessages:    unread,
		TotalVideos:       len(videos),
		TotalCertificates: len(certs),
		TotalJobs:         len(jobs),
		TotalReviews:      len(reviews),
	}
}
