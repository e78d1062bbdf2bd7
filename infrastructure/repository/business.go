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

const businessesTable = "businesses"

var businessColumns = []string{
	"id",
	"name",
	"industry",
	"description",
	"owner_email",
	"password_hash",
	"has_completed_metrics",
	"created_at",
}

type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	GetByEmail(ctx context.Context, email string) (*domain.Business, error)
	SetMetricsCompleted(ctx context.Context, id string) (bool, error)
	ListPendingMetricsCompletion(ctx context.Context) ([]string, error)
}

type businessRepository struct {
	conn postgres.Queryer
}

func NewBusinessRepository(conn postgres.Queryer) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	id := uuid.New()
	createdAt := time.Now().UTC()

	query, args, err := squirrel.
		Insert(businessesTable).
		Columns(businessColumns...).
		Values(
			id,
			business.Name,
			business.Industry,
			business.Description,
			business.OwnerEmail,
			business.PasswordHash,
			business.HasCompletedMetrics,
			createdAt,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var storedID uuid.UUID
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&storedID, &business.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir negócio")
	}
	business.ID = storedID.String()

	return business, nil
}

// GetByID retorna nil quando o negócio não existe
func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	businessID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, squirrel.Eq{"id": businessID})
}

// GetByEmail retorna nil quando nenhum negócio usa o email
func (r *businessRepository) GetByEmail(ctx context.Context, email string) (*domain.Business, error) {
	return r.getOne(ctx, squirrel.Eq{"owner_email": email})
}

func (r *businessRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns...).
		From(businessesTable).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	business, err := scanBusiness(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócio")
	}

	return business, nil
}

// SetMetricsCompleted informa se algum negócio foi encontrado com o id
func (r *businessRepository) SetMetricsCompleted(ctx context.Context, id string) (bool, error) {
	businessID, err := parseID(id)
	if err != nil {
		return false, err
	}

	query, args, err := squirrel.
		Update(businessesTable).
		Set("has_completed_metrics", true).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao atualizar negócio")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	return affected > 0, nil
}

// ListPendingMetricsCompletion lista negócios ainda marcados como incompletos que já possuem métricas
func (r *businessRepository) ListPendingMetricsCompletion(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("b.id").
		From(businessesTable + " b").
		Where(squirrel.Eq{"b.has_completed_metrics": false}).
		Where("EXISTS (SELECT 1 FROM " + metricsTable + " m WHERE m.business_id = b.id::text)").
		OrderBy("b.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar negócios pendentes")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear negócio")
		}
		ids = append(ids, id.String())
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return ids, nil
}

func scanBusiness(row *sql.Row) (*domain.Business, error) {
	var (
		business domain.Business
		id       uuid.UUID
	)

	err := row.Scan(
		&id,
		&business.Name,
		&business.Industry,
		&business.Description,
		&business.OwnerEmail,
		&business.PasswordHash,
		&business.HasCompletedMetrics,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	business.ID = id.String()
	return &business, nil
}
