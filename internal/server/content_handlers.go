package server

import (
	"errors"

	"aurafolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parsePatch reads a partial-update body. Key naming follows the JSON
// presentation form; translation to column naming happens in storage.
func parsePatch(c *fiber.Ctx) (map[string]any, error) {
	patch := map[string]any{}
	if err := c.BodyParser(&patch); err != nil {
		return nil, models.NewValidationError("Invalid request body")
	}
	if len(patch) == 0 {
		return nil, models.NewValidationError("Empty update")
	}
	return patch, nil
}

func respondUpdate[T any](c *fiber.Ctx, row *T, err error) error {
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(row)
}

func respondDelete(c *fiber.Ctx, ok bool, err error) error {
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"deleted": ok})
}

// Projects

func (s *Server) GetProjects(c *fiber.Ctx) error {
	return c.JSON(s.store.GetProjects(c.Context()))
}

func (s *Server) AddProject(c *fiber.Ctx) error {
	var p models.Project
	if err := c.BodyParser(&p); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddProject(c.Context(), p)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdateProject(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdateProject(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeleteProject(c *fiber.Ctx) error {
	ok, err := s.store.DeleteProject(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Posts

func (s *Server) GetPosts(c *fiber.Ctx) error {
	return c.JSON(s.store.GetPosts(c.Context()))
}

func (s *Server) AddPost(c *fiber.Ctx) error {
	var p models.Post
	if err := c.BodyParser(&p); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddPost(c.Context(), p)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdatePost(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdatePost(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeletePost(c *fiber.Ctx) error {
	ok, err := s.store.DeletePost(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Videos

func (s *Server) GetVideos(c *fiber.Ctx) error {
	return c.JSON(s.store.GetVideos(c.Context()))
}

func (s *Server) AddVideo(c *fiber.Ctx) error {
	var v models.Video
	if err := c.BodyParser(&v); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddVideo(c.Context(), v)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdateVideo(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	ok, err := s.store.DeleteVideo(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Certificates

func (s *Server) GetCertificates(c *fiber.Ctx) error {
	return c.JSON(s.store.GetCertificates(c.Context()))
}

func (s *Server) AddCertificate(c *fiber.Ctx) error {
	var cert models.Certificate
	if err := c.BodyParser(&cert); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddCertificate(c.Context(), cert)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) DeleteCertificate(c *fiber.Ctx) error {
	ok, err := s.store.DeleteCertificate(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Jobs

func (s *Server) GetJobs(c *fiber.Ctx) error {
	return c.JSON(s.store.GetJobs(c.Context()))
}

func (s *Server) AddJob(c *fiber.Ctx) error {
	var j models.Job
	if err := c.BodyParser(&j); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddJob(c.Context(), j)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdateJob(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdateJob(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeleteJob(c *fiber.Ctx) error {
	ok, err := s.store.DeleteJob(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Reviews

func (s *Server) GetReviews(c *fiber.Ctx) error {
	return c.JSON(s.store.GetReviews(c.Context()))
}

func (s *Server) AddReview(c *fiber.Ctx) error {
	var r models.Review
	if err := c.BodyParser(&r); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddReview(c.Context(), r)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) DeleteReview(c *fiber.Ctx) error {
	ok, err := s.store.DeleteReview(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Q&As

func (s *Server) GetQAs(c *fiber.Ctx) error {
	return c.JSON(s.store.GetQAs(c.Context()))
}

func (s *Server) AddQA(c *fiber.Ctx) error {
	var q models.QA
	if err := c.BodyParser(&q); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddQA(c.Context(), q)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdateQA(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdateQA(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeleteQA(c *fiber.Ctx) error {
	ok, err := s.store.DeleteQA(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}

// Messages

func (s *Server) GetMessages(c *fiber.Ctx) error {
	return c.JSON(s.store.GetMessages(c.Context()))
}

func (s *Server) AddMessage(c *fiber.Ctx) error {
	var m models.Message
	if err := c.BodyParser(&m); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row, err := s.store.AddMessage(c.Context(), m)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (s *Server) UpdateMessage(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	row, err := s.store.UpdateMessage(c.Context(), c.Params("id"), patch)
	return respondUpdate(c, row, err)
}

func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	ok, err := s.store.DeleteMessage(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}
