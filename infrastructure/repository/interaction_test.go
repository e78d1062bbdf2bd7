package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/internal/domain"
)

func TestInteractionRepository_Create(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewInteractionRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ai_interactions (id,business_id,query,response,interaction_type,timestamp)")).
		WithArgs(sqlmock.AnyArg(), "negocio-1", "Business insights request", "texto", "insight", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	interaction, err := repo.Create(context.Background(), &domain.Interaction{
		BusinessID:      "negocio-1",
		Query:           "Business insights request",
		Response:        "texto",
		InteractionType: domain.InteractionTypeInsight,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, interaction.ID)
	assert.False(t, interaction.Timestamp.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_ListByBusiness(t *testing.T) {
	newer := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		limit uint64
		query string
	}{
		{name: "Com limite", limit: 10, query: "FROM ai_interactions WHERE business_id = $1 ORDER BY timestamp DESC LIMIT 10"},
		{name: "Sem limite", limit: 0, query: "FROM ai_interactions WHERE business_id = $1 ORDER BY timestamp DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			repo := NewInteractionRepository(conn)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query) + "$").
				WithArgs("negocio-1").
				WillReturnRows(sqlmock.NewRows(interactionColumns).
					AddRow(metricID2, "negocio-1", "pergunta", "resposta", "question", newer).
					AddRow(metricID1, "negocio-1", "Business insights request", "texto", "insight", older))

			interactions, err := repo.ListByBusiness(context.Background(), "negocio-1", tt.limit)

			require.NoError(t, err)
			require.Len(t, interactions, 2)
			assert.Equal(t, domain.InteractionTypeQuestion, interactions[0].InteractionType)
			assert.Equal(t, newer, interactions[0].Timestamp)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
