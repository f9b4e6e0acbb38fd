package storage

import (
	"context"
	"errors"
	"log/slog"

	"aurafolio/internal/models"
	"aurafolio/internal/realtime"

	"gorm.io/gorm"
)

// ContactInput carries a visitor submission before it becomes a message row.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact stores a contact form submission as an unread message. The
// subject defaults when the visitor left none.
func (s *Store) SubmitContact(ctx context.Context, in ContactInput) (*models.Message, error) {
	subject := in.Subject
	if subject == "" {
		subject = "Contact Form"
	}
	msg := models.Message{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: subject,
		Message: in.Message,
		Source:  "contact-form",
		Read:    false,
	}
	return insertRow(ctx, s, &msg)
}

// AuraSubmitInfo stores a lead captured by the assistant widget. The message
// body defaults when the visitor left none.
func (s *Store) AuraSubmitInfo(ctx context.Context, in ContactInput) (*models.Message, error) {
	body := in.Message
	if body == "" {
		body = "Lead captured from Aura Assistant"
	}
	msg := models.Message{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: "Aura Assistant Lead",
		Message: body,
		Source:  "aura-assistant",
		Read:    false,
	}
	return insertRow(ctx, s, &msg)
}

// GetNewsletterSubscriptions lists subscriptions newest-first.
func (s *Store) GetNewsletterSubscriptions(ctx context.Context) []models.Newsletter {
	return listAllBy[models.Newsletter](ctx, s, "subscribed_at DESC")
}

// AddNewsletterSubscription records an email signup. A duplicate email maps
// to ErrAlreadySubscribed.
func (s *Store) AddNewsletterSubscription(ctx context.Context, email string) (*models.Newsletter, error) {
	sub := models.Newsletter{Email: email}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrAlreadySubscribed
		}
		s.log.Error("failed to add newsletter subscription", slog.String("error", err.Error()))
		return nil, err
	}
	s.publish(ctx, TableNewsletter, realtime.EventInsert, sub)
	return &sub, nil
}

// DeleteNewsletterSubscription removes a subscription by ID.
func (s *Store) DeleteNewsletterSubscription(ctx context.Context, id string) (bool, error) {
	return deleteRow[models.Newsletter](ctx, s, id)
}
