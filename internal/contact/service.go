package contact

import (
	"context"

	"gymbooking/internal/email"
	"gymbooking/internal/logger"
	"gymbooking/internal/metrics"
)

type Service interface {
	SubmitMessage(ctx context.Context, req CreateContactRequest) (*ContactMessage, error)
}

type service struct {
	repo  Repository
	email *email.Service
}

func NewService(repo Repository, emailService *email.Service) Service {
	return &service{
		repo:  repo,
		email: emailService,
	}
}

func (s *service) SubmitMessage(ctx context.Context, req CreateContactRequest) (*ContactMessage, error) {
	msg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	metrics.RecordContactMessage()
	logger.Infof("Contact message %d received from %s", msg.ID, msg.Email)

	// Best effort, never fails the submission.
	if err := s.email.SendContactReceived(ctx, msg.Email, msg.Name, msg.Message); err != nil {
		logger.Errorf("Failed to queue contact confirmation for %s: %v", msg.Email, err)
	}

	return msg, nil
}
