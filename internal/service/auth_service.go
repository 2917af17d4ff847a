package service

import (
	"context"
	"time"

	"github.com/QTMarketing/lama-cms/internal/config"
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, adminId uuid.UUID, req *dto.ChangePasswordRequest) error
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewApiError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewApiError(fiber.StatusUnauthorized, "invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.Auth.TokenLifetime)
	claims := jwt.MapClaims{
		"admin_id": user.Id.String(),
		"email":    user.Email,
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, adminId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "admin not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return serverutils.NewApiError(fiber.StatusUnauthorized, "current password is wrong")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user.PasswordHash = string(hash)
	user.UpdatedAt = &now
	return uow.AdminUserRepository().Update(ctx, user)
}

// EnsureDefaultAdmin seeds the first admin account from config on boot.
// It does nothing when the account already exists or no seed is configured.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.cfg.Auth.AdminEmail == "" || s.cfg.Auth.AdminPassword == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.AdminUserRepository().FindOne(ctx, specification.Filter("email", s.cfg.Auth.AdminEmail))
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.AdminUser{
		Id:           uuid.New(),
		Email:        s.cfg.Auth.AdminEmail,
		PasswordHash: string(hash),
		FullName:     s.cfg.Auth.AdminName,
		CreatedAt:    time.Now(),
	}
	if err := uow.AdminUserRepository().Create(ctx, &admin); err != nil {
		return err
	}

	s.logger.Info("auth", "seeded default admin account", map[string]interface{}{
		"email": admin.Email,
	})
	return nil
}
