package measuring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const businessID = "77777777-7777-7777-7777-777777777777"

func metric(metricType domain.MetricType, value float64, period string) *domain.Metric {
	return &domain.Metric{BusinessID: businessID, MetricType: metricType, Value: value, Period: period}
}

func TestMetricsService_KPIs(t *testing.T) {
	tests := []struct {
		name     string
		latest   map[domain.MetricType][]*domain.Metric
		expected *domain.KPIs
	}{
		{
			name: "Receita 100 e depois 150 - variação de 50%",
			latest: map[domain.MetricType][]*domain.Metric{
				domain.MetricTypeRevenue: {
					metric(domain.MetricTypeRevenue, 150, "2024-02"),
					metric(domain.MetricTypeRevenue, 100, "2024-01"),
				},
			},
			expected: &domain.KPIs{MonthlyRevenue: 150, MonthlyRevenueChange: 0.5},
		},
		{
			name:     "Sem métricas - tudo zero",
			latest:   map[domain.MetricType][]*domain.Metric{},
			expected: &domain.KPIs{},
		},
		{
			name: "Uma métrica de cada - valor sem variação",
			latest: map[domain.MetricType][]*domain.Metric{
				domain.MetricTypeRevenue:        {metric(domain.MetricTypeRevenue, 10, "2024-01")},
				domain.MetricTypeCustomers:      {metric(domain.MetricTypeCustomers, 4, "2024-01")},
				domain.MetricTypeConversionRate: {metric(domain.MetricTypeConversionRate, 0.2, "2024-01")},
			},
			expected: &domain.KPIs{MonthlyRevenue: 10, CustomerGrowth: 4, ConversionRate: 0.2},
		},
		{
			name: "Valor anterior zero - variação zero",
			latest: map[domain.MetricType][]*domain.Metric{
				domain.MetricTypeCustomers: {
					metric(domain.MetricTypeCustomers, 8, "2024-02"),
					metric(domain.MetricTypeCustomers, 0, "2024-01"),
				},
			},
			expected: &domain.KPIs{CustomerGrowth: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMetricRepository(ctrl)

			for _, metricType := range []domain.MetricType{
				domain.MetricTypeRevenue, domain.MetricTypeCustomers, domain.MetricTypeConversionRate,
			} {
				repo.EXPECT().
					FindLatestByType(gomock.Any(), businessID, metricType, uint64(2)).
					Return(tt.latest[metricType], nil)
			}

			kpis, err := NewMetricsService(repo).KPIs(context.Background(), businessID)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.MonthlyRevenue, kpis.MonthlyRevenue, 1e-9)
			assert.InDelta(t, tt.expected.MonthlyRevenueChange, kpis.MonthlyRevenueChange, 1e-9)
			assert.InDelta(t, tt.expected.CustomerGrowth, kpis.CustomerGrowth, 1e-9)
			assert.InDelta(t, tt.expected.CustomerGrowthChange, kpis.CustomerGrowthChange, 1e-9)
			assert.InDelta(t, tt.expected.ConversionRate, kpis.ConversionRate, 1e-9)
			assert.InDelta(t, tt.expected.ConversionRateChange, kpis.ConversionRateChange, 1e-9)
		})
	}
}

func TestMetricsService_KPIs_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)
	repo.EXPECT().
		FindLatestByType(gomock.Any(), businessID, domain.MetricTypeRevenue, uint64(2)).
		Return(nil, errors.New("timeout"))

	_, err := NewMetricsService(repo).KPIs(context.Background(), businessID)

	var measuringErr *MeasuringError
	require.ErrorAs(t, err, &measuringErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, measuringErr.Code)
}

func TestMetricsService_RevenueTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)

	repo.EXPECT().SumByPeriod(gomock.Any(), businessID, domain.MetricTypeRevenue).Return([]domain.PeriodSum{
		{Period: "2024-01", Total: 100},
		{Period: "2024-02", Total: 250},
	}, nil)
	repo.EXPECT().SumByPeriod(gomock.Any(), businessID, domain.MetricTypeCustomers).Return([]domain.PeriodSum{
		{Period: "2024-02", Total: 12},
		{Period: "2024-03", Total: 7},
	}, nil)

	trends, err := NewMetricsService(repo).RevenueTrends(context.Background(), businessID)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendPoint{
		{Month: "2024-01", Revenue: 100, Customers: 0},
		{Month: "2024-02", Revenue: 250, Customers: 12},
	}, trends)
}

func TestMetricsService_GrowthByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)

	repo.EXPECT().FirstAndLastByType(gomock.Any(), businessID).Return([]domain.CategoryBounds{
		{MetricType: domain.MetricTypeRevenue, First: 100, Last: 150},
		{MetricType: domain.MetricTypeCustomers, First: 0, Last: 30},
	}, nil)

	growth, err := NewMetricsService(repo).GrowthByCategory(context.Background(), businessID)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryGrowth{
		{Category: "customers", Growth: 0},
		{Category: "revenue", Growth: 50},
	}, growth)
}
