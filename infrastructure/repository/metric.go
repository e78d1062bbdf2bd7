package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

const metricsTable = "business_metrics"

// Ordenação por bytes, igual à comparação de strings em Go
const (
	periodAsc  = `period COLLATE "C" ASC`
	periodDesc = `period COLLATE "C" DESC`
)

var metricColumns = []string{
	"id",
	"business_id",
	"metric_type",
	"value",
	"period",
	"metadata",
	"timestamp",
}

type MetricRepository interface {
	Create(ctx context.Context, metric *domain.Metric) (*domain.Metric, error)
	CreateMany(ctx context.Context, metrics []*domain.Metric) ([]*domain.Metric, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Metric, error)
	ListAll(ctx context.Context) ([]*domain.Metric, error)
	FindLatestByType(ctx context.Context, businessID string, metricType domain.MetricType, limit uint64) ([]*domain.Metric, error)
	SumByPeriod(ctx context.Context, businessID string, metricType domain.MetricType) ([]domain.PeriodSum, error)
	FirstAndLastByType(ctx context.Context, businessID string) ([]domain.CategoryBounds, error)
}

type metricRepository struct {
	conn postgres.Queryer
}

func NewMetricRepository(conn postgres.Queryer) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) Create(ctx context.Context, metric *domain.Metric) (*domain.Metric, error) {
	created, err := r.CreateMany(ctx, []*domain.Metric{metric})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// CreateMany grava todas as métricas em um único INSERT
func (r *metricRepository) CreateMany(ctx context.Context, metrics []*domain.Metric) ([]*domain.Metric, error) {
	if len(metrics) == 0 {
		return []*domain.Metric{}, nil
	}

	queryBuilder := squirrel.
		Insert(metricsTable).
		Columns(metricColumns...).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	for _, metric := range metrics {
		metadata, err := encodeMetadata(metric.Metadata)
		if err != nil {
			return nil, err
		}

		if metric.Timestamp.IsZero() {
			metric.Timestamp = time.Now().UTC()
		}

		queryBuilder = queryBuilder.Values(
			uuid.New(),
			metric.BusinessID,
			string(metric.MetricType),
			metric.Value,
			metric.Period,
			metadata,
			metric.Timestamp,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir métricas")
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear id da métrica")
		}
		if i < len(metrics) {
			metrics[i].ID = id.String()
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return metrics, nil
}

func (r *metricRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Metric, error) {
	return r.list(ctx, squirrel.
		Select(metricColumns...).
		From(metricsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy(periodAsc, "timestamp ASC"))
}

func (r *metricRepository) ListAll(ctx context.Context) ([]*domain.Metric, error) {
	return r.list(ctx, squirrel.
		Select(metricColumns...).
		From(metricsTable).
		OrderBy("timestamp ASC"))
}

// FindLatestByType retorna as entradas mais recentes primeiro, pela ordem lexical do período
func (r *metricRepository) FindLatestByType(ctx context.Context, businessID string, metricType domain.MetricType, limit uint64) ([]*domain.Metric, error) {
	return r.list(ctx, squirrel.
		Select(metricColumns...).
		From(metricsTable).
		Where(squirrel.Eq{"business_id": businessID, "metric_type": string(metricType)}).
		OrderBy(periodDesc, "timestamp DESC").
		Limit(limit))
}

// SumByPeriod soma os valores de um tipo por período, em ordem crescente de período
func (r *metricRepository) SumByPeriod(ctx context.Context, businessID string, metricType domain.MetricType) ([]domain.PeriodSum, error) {
	query, args, err := squirrel.
		Select("period", "SUM(value)").
		From(metricsTable).
		Where(squirrel.Eq{"business_id": businessID, "metric_type": string(metricType)}).
		GroupBy("period").
		OrderBy(periodAsc).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar métricas por período")
	}
	defer rows.Close()

	sums := make([]domain.PeriodSum, 0)
	for rows.Next() {
		var sum domain.PeriodSum
		if err := rows.Scan(&sum.Period, &sum.Total); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear soma do período")
		}
		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sums, nil
}

// FirstAndLastByType retorna, para cada tipo, o primeiro e o último valor na ordem dos períodos.
// Empates no mesmo período são resolvidos pela ordem de inserção.
func (r *metricRepository) FirstAndLastByType(ctx context.Context, businessID string) ([]domain.CategoryBounds, error) {
	query, args, err := squirrel.
		Select(
			"metric_type",
			`(array_agg(value ORDER BY `+periodAsc+`, timestamp ASC))[1]`,
			`(array_agg(value ORDER BY `+periodDesc+`, timestamp DESC))[1]`,
		).
		From(metricsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		GroupBy("metric_type").
		OrderBy("metric_type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar métricas por categoria")
	}
	defer rows.Close()

	bounds := make([]domain.CategoryBounds, 0)
	for rows.Next() {
		var (
			b          domain.CategoryBounds
			metricType string
		)
		if err := rows.Scan(&metricType, &b.First, &b.Last); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear categoria")
		}
		b.MetricType = domain.MetricType(metricType)
		bounds = append(bounds, b)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return bounds, nil
}

func (r *metricRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Metric, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar métricas")
	}
	defer rows.Close()

	metrics := make([]*domain.Metric, 0)
	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear métrica")
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return metrics, nil
}

func scanMetric(rows *sql.Rows) (*domain.Metric, error) {
	var (
		metric     domain.Metric
		id         uuid.UUID
		metricType string
		metadata   []byte
	)

	err := rows.Scan(
		&id,
		&metric.BusinessID,
		&metricType,
		&metric.Value,
		&metric.Period,
		&metadata,
		&metric.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	metric.ID = id.String()
	metric.MetricType = domain.MetricType(metricType)

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &metric.Metadata); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar metadata")
		}
	}

	return &metric, nil
}

// encodeMetadata devolve nil para metadata ausente, gravado como NULL
func encodeMetadata(metadata map[string]any) (any, error) {
	if metadata == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao codificar metadata")
	}

	return encoded, nil
}
