package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"

	contacterrors "github.com/archit-sahay/Aibo-Meikan/internal/contact/errors"
	"github.com/archit-sahay/Aibo-Meikan/internal/mailer"

	"go.uber.org/zap"
)

const minMessageLength = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

//go:generate mockgen -source=contact_service.go -destination=mock/contact_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req ContactRequest) error
}

type service struct {
	notifier mailer.Notifier
	logger   *zap.Logger
}

func NewService(notifier mailer.Notifier) Service {
	return &service{
		notifier: notifier,
		logger:   zap.L().Named("contact.service"),
	}
}

// Submit relays a contact form message to the admin inbox. Unlike the
// registration notification this send is load-bearing: if the mail does
// not go out, the submission failed.
func (s *service) Submit(ctx context.Context, req ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return contacterrors.ErrAllFieldsRequired
	}

	if !emailPattern.MatchString(req.Email) {
		return contacterrors.ErrInvalidEmail
	}

	if len(req.Message) < minMessageLength {
		return contacterrors.ErrMessageTooShort
	}

	err := s.notifier.SendContactEmail(ctx, mailer.ContactData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return contacterrors.ErrMailNotConfigured
		}
		s.logger.Error("contact email failed", zap.Error(err))
		return contacterrors.ErrSendFailed
	}

	return nil
}
