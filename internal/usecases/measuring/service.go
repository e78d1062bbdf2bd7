package measuring

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
)

// kpiWindow é a quantidade de entradas recentes necessárias para calcular a variação
const kpiWindow = 2

type MeasuringService interface {
	KPIs(ctx context.Context, businessID string) (*domain.KPIs, error)
	RevenueTrends(ctx context.Context, businessID string) ([]domain.TrendPoint, error)
	GrowthByCategory(ctx context.Context, businessID string) ([]domain.CategoryGrowth, error)
}

type MetricsService struct {
	MetricRepository repository.MetricRepository
}

func NewMetricsService(metricRepository repository.MetricRepository) MeasuringService {
	return &MetricsService{
		MetricRepository: metricRepository,
	}
}

// KPIs calcula valor atual e variação de receita, clientes e taxa de conversão
func (s *MetricsService) KPIs(ctx context.Context, businessID string) (*domain.KPIs, error) {
	kpis := &domain.KPIs{}

	targets := []struct {
		metricType domain.MetricType
		value      *float64
		change     *float64
	}{
		{domain.MetricTypeRevenue, &kpis.MonthlyRevenue, &kpis.MonthlyRevenueChange},
		{domain.MetricTypeCustomers, &kpis.CustomerGrowth, &kpis.CustomerGrowthChange},
		{domain.MetricTypeConversionRate, &kpis.ConversionRate, &kpis.ConversionRateChange},
	}

	for _, target := range targets {
		latest, err := s.MetricRepository.FindLatestByType(ctx, businessID, target.metricType, kpiWindow)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"business_id": businessID,
				"metric_type": target.metricType,
			}).Error("Erro ao buscar métricas recentes")
			return nil, NewMeasuringError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Error calculating KPIs")
		}

		*target.value, *target.change = domain.LatestValueAndChange(latest)
	}

	return kpis, nil
}

// RevenueTrends soma receita e clientes por período, em ordem crescente de período
func (s *MetricsService) RevenueTrends(ctx context.Context, businessID string) ([]domain.TrendPoint, error) {
	revenue, err := s.MetricRepository.SumByPeriod(ctx, businessID, domain.MetricTypeRevenue)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao agregar receita por período")
		return nil, NewMeasuringError(ErrAggregation, apiErrors.ErrDatabaseOperation, "Error getting revenue trends")
	}

	customers, err := s.MetricRepository.SumByPeriod(ctx, businessID, domain.MetricTypeCustomers)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao agregar clientes por período")
		return nil, NewMeasuringError(ErrAggregation, apiErrors.ErrDatabaseOperation, "Error getting revenue trends")
	}

	return domain.MergeTrends(revenue, customers), nil
}

func (s *MetricsService) GrowthByCategory(ctx context.Context, businessID string) ([]domain.CategoryGrowth, error) {
	bounds, err := s.MetricRepository.FirstAndLastByType(ctx, businessID)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao agregar crescimento por categoria")
		return nil, NewMeasuringError(ErrAggregation, apiErrors.ErrDatabaseOperation, "Error getting growth by category")
	}

	return domain.GrowthByCategory(bounds), nil
}
