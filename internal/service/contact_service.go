package service

import (
	"context"
	"time"

	"github.com/QTMarketing/lama-cms/internal/config"
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/mailer"
	"github.com/QTMarketing/lama-cms/internal/repository/scope"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error)
	List(ctx context.Context, page, perPage int) ([]dto.ContactSubmissionResponse, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	cfg          *config.Config
	logger       logger.ILogger
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, cfg *config.Config, log logger.ILogger) IContactService {
	return &contactService{
		uowFactory:   uowFactory,
		emailService: emailService,
		cfg:          cfg,
		logger:       log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission := entity.ContactSubmission{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := uow.ContactRepository().Create(ctx, &submission); err != nil {
		return nil, err
	}

	// Notification is auxiliary; a mail failure never fails the request.
	if s.cfg.Contact.NotifyEmail != "" {
		if err := s.emailService.SendContactNotification(
			s.cfg.Contact.NotifyEmail,
			submission.Name,
			submission.Email,
			submission.Phone,
			submission.Subject,
			submission.Message,
		); err != nil {
			s.logger.Warn("contact", "failed to send contact notification", map[string]interface{}{
				"submission_id": submission.Id,
				"error":         err.Error(),
			})
		}
	}

	return &dto.SubmitContactResponse{Id: submission.Id}, nil
}

func (s *contactService) List(ctx context.Context, page, perPage int) ([]dto.ContactSubmissionResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	total, err := uow.ContactRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	submissions, err := uow.ContactRepository().FindAll(ctx,
		specification.WithScope{Scope: scope.OrderByCreatedDesc},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ContactSubmissionResponse, 0, len(submissions))
	for _, c := range submissions {
		out = append(out, dto.ContactSubmissionResponse{
			Id:        c.Id,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Subject:   c.Subject,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, total, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ContactRepository().Delete(ctx, id)
}
