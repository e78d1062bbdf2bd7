package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

const interactionsTable = "ai_interactions"

var interactionColumns = []string{
	"id",
	"business_id",
	"query",
	"response",
	"interaction_type",
	"timestamp",
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error)
	ListByBusiness(ctx context.Context, businessID string, limit uint64) ([]*domain.Interaction, error)
}

type interactionRepository struct {
	conn postgres.Queryer
}

func NewInteractionRepository(conn postgres.Queryer) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	id := uuid.New()
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now().UTC()
	}

	query, args, err := squirrel.
		Insert(interactionsTable).
		Columns(interactionColumns...).
		Values(
			id,
			interaction.BusinessID,
			interaction.Query,
			interaction.Response,
			string(interaction.InteractionType),
			interaction.Timestamp,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "erro ao registrar interação")
	}

	interaction.ID = id.String()
	return interaction, nil
}

// ListByBusiness retorna as interações mais recentes primeiro; limit zero não limita
func (r *interactionRepository) ListByBusiness(ctx context.Context, businessID string, limit uint64) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns...).
		From(interactionsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar interações")
	}
	defer rows.Close()

	interactions := make([]*domain.Interaction, 0)
	for rows.Next() {
		var (
			interaction     domain.Interaction
			id              uuid.UUID
			interactionType string
		)

		err := rows.Scan(
			&id,
			&interaction.BusinessID,
			&interaction.Query,
			&interaction.Response,
			&interactionType,
			&interaction.Timestamp,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear interação")
		}

		interaction.ID = id.String()
		interaction.InteractionType = domain.InteractionType(interactionType)
		interactions = append(interactions, &interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return interactions, nil
}
