package server

import (
	"errors"
	"time"

	"aurafolio/internal/cache"
	"aurafolio/internal/models"
	"aurafolio/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	settingsCacheKey = "cache:settings"
	settingsCacheTTL = 5 * time.Minute
)

// GetSettings returns the site profile, cache-aside through Redis.
func (s *Server) GetSettings(c *fiber.Ctx) error {
	ctx := c.Context()

	var cached models.Settings
	if found, err := cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil && found {
		return c.JSON(cached)
	}

	settings := s.store.GetSettings(ctx)
	_ = cache.SetJSON(ctx, settingsCacheKey, settings, settingsCacheTTL)
	return c.JSON(settings)
}

// UpdateSettings applies an admin patch to the site profile.
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	row, updateErr := s.store.UpdateSettings(c.Context(), patch)
	if updateErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(updateErr))
	}

	_ = cache.Invalidate(c.Context(), settingsCacheKey)
	return c.JSON(row)
}

// GetAnalytics returns the dashboard counters.
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(s.store.GetAnalytics(c.Context()))
}

// SubmitContact accepts a visitor contact form submission.
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var in storage.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email and message are required"))
	}

	row, err := s.store.SubmitContact(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// AuraSubmitInfo accepts a lead captured by the assistant widget.
func (s *Server) AuraSubmitInfo(c *fiber.Ctx) error {
	var in storage.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if in.Name == "" || in.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and email are required"))
	}

	row, err := s.store.AuraSubmitInfo(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// NewsletterRequest carries a signup email.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// AddNewsletterSubscription records a mailing list signup.
func (s *Server) AddNewsletterSubscription(c *fiber.Ctx) error {
	var req NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}

	sub, err := s.store.AddNewsletterSubscription(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrAlreadySubscribed) {
			return models.RespondWithError(c, fiber.StatusConflict, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GetNewsletterSubscriptions lists mailing list signups for the admin panel.
func (s *Server) GetNewsletterSubscriptions(c *fiber.Ctx) error {
	return c.JSON(s.store.GetNewsletterSubscriptions(c.Context()))
}

// DeleteNewsletterSubscription removes a signup.
func (s *Server) DeleteNewsletterSubscription(c *fiber.Ctx) error {
	ok, err := s.store.DeleteNewsletterSubscription(c.Context(), c.Params("id"))
	return respondDelete(c, ok, err)
}
