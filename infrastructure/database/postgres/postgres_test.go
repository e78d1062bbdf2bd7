package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/internal/config"
)

func TestConfigurePool(t *testing.T) {
	tests := []struct {
		name            string
		cfg             config.Database
		expectedMaxOpen int
	}{
		{
			name:            "Limites configurados",
			cfg:             config.Database{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute},
			expectedMaxOpen: 7,
		},
		{
			name:            "Sem limites mantém o padrão do database/sql",
			cfg:             config.Database{},
			expectedMaxOpen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			configurePool(db, tt.cfg)

			assert.Equal(t, tt.expectedMaxOpen, db.Stats().MaxOpenConnections)
		})
	}
}
