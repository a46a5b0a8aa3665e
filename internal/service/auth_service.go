package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ai-legalaid-be/internal/dto"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/internal/pkg/mailer"
	"ai-legalaid-be/internal/pkg/serverutils"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
)

const metricTotalUsers = "total_users"

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmailOrUsername{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email or username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if err := uow.AnalyticsRepository().IncrementMetric(ctx, metricTotalUsers, 1); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	// Welcome email is best-effort, never blocks registration.
	go func(email, name string) {
		if err := s.emailService.SendWelcome(email, name); err != nil {
			log.Printf("[WARN] Failed to send welcome email to %s: %v", email, err)
		}
	}(user.Email, user.FullName)

	return &dto.RegisterResponse{
		Id:       user.Id,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, apperror.Forbidden("account is blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := serverutils.GenerateToken(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		log.Printf("[WARN] Failed to update last login for %s: %v", user.Id, err)
	}
	user.LastLoginAt = &now

	return &dto.LoginResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:          user.Id,
		Email:       user.Email,
		Username:    user.Username,
		FullName:    user.FullName,
		Role:        string(user.Role),
		Status:      string(user.Status),
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}
