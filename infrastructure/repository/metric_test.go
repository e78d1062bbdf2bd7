package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

const (
	metricID1 = "0b6f4a2e-1111-4c3d-8e9f-000000000001"
	metricID2 = "0b6f4a2e-1111-4c3d-8e9f-000000000002"
)

func TestMetricRepository_CreateMany(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO business_metrics (id,business_id,metric_type,value,period,metadata,timestamp) VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14) RETURNING id")).
		WithArgs(
			sqlmock.AnyArg(), "negocio-1", "revenue", 100.0, "2024-01", []byte(`{"source":"pos"}`), now,
			sqlmock.AnyArg(), "negocio-1", "churn", 2.5, "2024-01", nil, now,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(metricID1).AddRow(metricID2))

	metrics, err := repo.CreateMany(context.Background(), []*domain.Metric{
		{BusinessID: "negocio-1", MetricType: domain.MetricTypeRevenue, Value: 100, Period: "2024-01", Timestamp: now, Metadata: map[string]any{"source": "pos"}},
		{BusinessID: "negocio-1", MetricType: domain.MetricType("churn"), Value: 2.5, Period: "2024-01", Timestamp: now},
	})

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, metricID1, metrics[0].ID)
	assert.Equal(t, metricID2, metrics[1].ID)
	assert.Equal(t, domain.MetricType("churn"), metrics[1].MetricType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_CreateMany_FalhaNaoGravaNada(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO business_metrics")).
		WillReturnError(errors.New("conexão perdida"))

	metrics, err := repo.CreateMany(context.Background(), []*domain.Metric{
		{BusinessID: "negocio-1", MetricType: domain.MetricTypeRevenue, Value: 1, Period: "2024-01"},
		{BusinessID: "negocio-1", MetricType: domain.MetricTypeRevenue, Value: 2, Period: "2024-02"},
	})

	assert.Error(t, err)
	assert.Nil(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_CreateMany_ListaVazia(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)

	metrics, err := repo.CreateMany(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_ListByBusiness(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)
	ts := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM business_metrics WHERE business_id = $1 ORDER BY period COLLATE "C" ASC, timestamp ASC`)).
		WithArgs("negocio-1").
		WillReturnRows(sqlmock.NewRows(metricColumns).
			AddRow(metricID1, "negocio-1", "revenue", 100.0, "2024-01", []byte(`{"source":"pos"}`), ts).
			AddRow(metricID2, "negocio-1", "customers", 12.0, "2024-01", nil, ts))

	metrics, err := repo.ListByBusiness(context.Background(), "negocio-1")

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, domain.MetricTypeRevenue, metrics[0].MetricType)
	assert.Equal(t, map[string]any{"source": "pos"}, metrics[0].Metadata)
	assert.Nil(t, metrics[1].Metadata)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_FindLatestByType(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE business_id = $1 AND metric_type = $2 ORDER BY period COLLATE "C" DESC, timestamp DESC LIMIT 2`)).
		WithArgs("negocio-1", "revenue").
		WillReturnRows(sqlmock.NewRows(metricColumns).
			AddRow(metricID2, "negocio-1", "revenue", 150.0, "2024-02", nil, ts).
			AddRow(metricID1, "negocio-1", "revenue", 100.0, "2024-01", nil, ts))

	metrics, err := repo.FindLatestByType(context.Background(), "negocio-1", domain.MetricTypeRevenue, 2)

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "2024-02", metrics[0].Period)
	assert.Equal(t, "2024-01", metrics[1].Period)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_SumByPeriod(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT period, SUM(value) FROM business_metrics WHERE business_id = $1 AND metric_type = $2 GROUP BY period ORDER BY period COLLATE "C" ASC`)).
		WithArgs("negocio-1", "revenue").
		WillReturnRows(sqlmock.NewRows([]string{"period", "sum"}).
			AddRow("2024-01", 100.0).
			AddRow("2024-02", 250.0))

	sums, err := repo.SumByPeriod(context.Background(), "negocio-1", domain.MetricTypeRevenue)

	require.NoError(t, err)
	assert.Equal(t, []domain.PeriodSum{
		{Period: "2024-01", Total: 100},
		{Period: "2024-02", Total: 250},
	}, sums)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRepository_FirstAndLastByType(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewMetricRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT metric_type, (array_agg(value ORDER BY period COLLATE "C" ASC, timestamp ASC))[1], (array_agg(value ORDER BY period COLLATE "C" DESC, timestamp DESC))[1] FROM business_metrics WHERE business_id = $1 GROUP BY metric_type ORDER BY metric_type ASC`)).
		WithArgs("negocio-1").
		WillReturnRows(sqlmock.NewRows([]string{"metric_type", "first", "last"}).
			AddRow("customers", 10.0, 15.0).
			AddRow("revenue", 100.0, 150.0))

	bounds, err := repo.FirstAndLastByType(context.Background(), "negocio-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryBounds{
		{MetricType: domain.MetricTypeCustomers, First: 10, Last: 15},
		{MetricType: domain.MetricTypeRevenue, First: 100, Last: 150},
	}, bounds)
	assert.NoError(t, mock.ExpectationsWereMet())
}
