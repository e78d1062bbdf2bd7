package business

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
)

type BusinessService interface {
	Create(ctx context.Context, request *domain.CreateBusinessRequest) (*domain.BusinessResponse, error)
	ListForUser(ctx context.Context, claims *domain.Claims) ([]*domain.BusinessResponse, error)
	Get(ctx context.Context, businessID string) (*domain.BusinessResponse, error)
	AddMetric(ctx context.Context, request *domain.CreateMetricRequest) (*domain.Metric, error)
	AddMetricsBatch(ctx context.Context, requests []domain.CreateMetricRequest) ([]*domain.Metric, error)
	ListMetrics(ctx context.Context, businessID string) ([]*domain.Metric, error)
	DebugDump(ctx context.Context) (*domain.MetricsDump, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	metricRepo   repository.MetricRepository
	cfg          *config.Config
	now          func() time.Time
}

func NewService(
	businessRepo repository.BusinessRepository,
	metricRepo repository.MetricRepository,
	cfg *config.Config,
) BusinessService {
	return &Service{
		businessRepo: businessRepo,
		metricRepo:   metricRepo,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create grava um negócio sem senha; ele não consegue fazer login
func (s *Service) Create(ctx context.Context, request *domain.CreateBusinessRequest) (*domain.BusinessResponse, error) {
	business, err := s.businessRepo.Create(ctx, &domain.Business{
		Name:        request.Name,
		Industry:    request.Industry,
		Description: request.Description,
		OwnerEmail:  request.OwnerEmail,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar negócio")
		return nil, NewBusinessError(ErrCreateBusiness, apiErrors.ErrDatabaseOperation, "Error creating business")
	}

	return business.ToResponse(), nil
}

// ListForUser devolve no máximo o negócio ligado ao token
func (s *Service) ListForUser(ctx context.Context, claims *domain.Claims) ([]*domain.BusinessResponse, error) {
	businesses := make([]*domain.BusinessResponse, 0, 1)

	business, err := s.businessRepo.GetByID(ctx, claims.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidIdentifier) {
			return businesses, nil
		}
		logrus.WithError(err).Error("Erro ao listar negócios do usuário")
		return nil, NewBusinessError(ErrFetchBusiness, apiErrors.ErrDatabaseOperation, "Error getting businesses")
	}

	if business != nil {
		businesses = append(businesses, business.ToResponse())
	}

	return businesses, nil
}

func (s *Service) Get(ctx context.Context, businessID string) (*domain.BusinessResponse, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidIdentifier) {
			return nil, NewBusinessErrorWithID(ErrInvalidIdentifier, apiErrors.ErrInvalidIdentifier, businessID, "Invalid business ID")
		}
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao buscar negócio")
		return nil, NewBusinessErrorWithID(ErrFetchBusiness, apiErrors.ErrDatabaseOperation, businessID, "Error getting business")
	}

	if business == nil {
		return nil, NewBusinessErrorWithID(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, businessID, "Business not found")
	}

	return business.ToResponse(), nil
}

func (s *Service) AddMetric(ctx context.Context, request *domain.CreateMetricRequest) (*domain.Metric, error) {
	s.warnUnusualMetric(*request)

	metric, err := s.metricRepo.Create(ctx, request.ToMetric(s.now()))
	if err != nil {
		logrus.WithError(err).WithField("business_id", request.BusinessID).Error("Erro ao gravar métrica")
		return nil, NewBusinessErrorWithID(ErrCreateMetric, apiErrors.ErrDatabaseOperation, request.BusinessID, "Error adding metric")
	}

	return metric, nil
}

// AddMetricsBatch grava todas as métricas de uma vez; uma falha não grava nenhuma
func (s *Service) AddMetricsBatch(ctx context.Context, requests []domain.CreateMetricRequest) ([]*domain.Metric, error) {
	if len(requests) == 0 {
		return nil, NewBusinessError(ErrNoMetricsProvided, apiErrors.ErrMissingRequiredData, "No metrics provided")
	}

	now := s.now()
	metrics := make([]*domain.Metric, 0, len(requests))
	for _, request := range requests {
		s.warnUnusualMetric(request)
		metrics = append(metrics, request.ToMetric(now))
	}

	created, err := s.metricRepo.CreateMany(ctx, metrics)
	if err != nil {
		logrus.WithError(err).WithField("quantity", len(metrics)).Error("Erro ao gravar lote de métricas")
		return nil, NewBusinessError(ErrCreateMetric, apiErrors.ErrDatabaseOperation, "Error adding metrics")
	}

	logrus.Infof("Lote de %d métricas gravado", len(created))

	return created, nil
}

func (s *Service) ListMetrics(ctx context.Context, businessID string) ([]*domain.Metric, error) {
	metrics, err := s.metricRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao listar métricas")
		return nil, NewBusinessErrorWithID(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, businessID, "Error getting metrics")
	}

	return metrics, nil
}

// DebugDump devolve todas as métricas gravadas, de todos os negócios
func (s *Service) DebugDump(ctx context.Context) (*domain.MetricsDump, error) {
	metrics, err := s.metricRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar todas as métricas")
		return nil, NewBusinessError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Error getting metrics")
	}

	return &domain.MetricsDump{
		Count:    len(metrics),
		Database: s.cfg.Database.Name,
		Metrics:  metrics,
	}, nil
}

func (s *Service) warnUnusualMetric(request domain.CreateMetricRequest) {
	entry := logrus.WithFields(logrus.Fields{
		"business_id": request.BusinessID,
		"metric_type": request.MetricType,
		"period":      request.Period,
	})

	if !domain.IsMonthPeriod(request.Period) {
		entry.Warn("Período fora do formato YYYY-MM; a ordenação lexical pode não ser cronológica")
	}

	if !request.MetricType.IsKnown() {
		entry.Debug("Tipo de métrica fora das categorias conhecidas")
	}
}
