package authenticating

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
)

const tokenTypeBearer = "bearer"

type Authenticator interface {
	Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.CurrentUser, error)
	CompleteMetrics(ctx context.Context, businessID string) error
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	tokens       *TokenIssuer
}

func NewService(businessRepo repository.BusinessRepository, cfg *config.Config) (Authenticator, error) {
	tokens, err := NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &Service{
		businessRepo: businessRepo,
		tokens:       tokens,
	}, nil
}

// Signup cria o negócio com o digest da senha e já devolve um token de acesso
func (s *Service) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email and password are required")
	}

	existing, err := s.businessRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar email no cadastro")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error creating account")
	}

	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email already registered")
	}

	business, err := s.businessRepo.Create(ctx, &domain.Business{
		Name:         req.Name,
		Industry:     req.Industry,
		Description:  req.Description,
		OwnerEmail:   req.Email,
		PasswordHash: HashPassword(req.Password),
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar negócio no cadastro")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error creating account")
	}

	return s.authResponse(business)
}

// Login confere o digest da senha; email desconhecido e senha errada geram o mesmo erro
func (s *Service) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	business, err := s.businessRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar negócio no login")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error during login")
	}

	if business == nil || !VerifyPassword(req.Password, business.PasswordHash) {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Incorrect email or password")
	}

	return s.authResponse(business)
}

func (s *Service) CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.CurrentUser, error) {
	business, err := s.businessRepo.GetByID(ctx, claims.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidIdentifier) {
			return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "User not found")
		}
		logrus.WithError(err).Error("Erro ao buscar usuário atual")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error getting user info")
	}

	if business == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "User not found")
	}

	return &domain.CurrentUser{
		BusinessID:          business.ID,
		Email:               business.OwnerEmail,
		Name:                business.Name,
		Industry:            business.Industry,
		HasCompletedMetrics: business.HasCompletedMetrics,
	}, nil
}

// CompleteMetrics marca o negócio como tendo concluído o cadastro de métricas
func (s *Service) CompleteMetrics(ctx context.Context, businessID string) error {
	matched, err := s.businessRepo.SetMetricsCompleted(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidIdentifier) {
			return NewAuthError(ErrInvalidIdentifier, apiErrors.ErrInvalidIdentifier, "Invalid business ID")
		}
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao marcar métricas como concluídas")
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Error updating metrics status")
	}

	if !matched {
		return NewAuthError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, "Business not found")
	}

	return nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	return s.tokens.Validate(tokenString)
}

func (s *Service) authResponse(business *domain.Business) (*domain.AuthResponse, error) {
	token, err := s.tokens.Issue(business.OwnerEmail, business.ID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar token")
		return nil, NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, "Error generating token")
	}

	return &domain.AuthResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		BusinessID:  business.ID,
		Email:       business.OwnerEmail,
		Name:        business.Name,
	}, nil
}
