// Package migration aplica o esquema do banco embutido no binário
package migration

import (
	"database/sql"
	"embed"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

func Source() (source.Driver, error) {
	return iofs.New(migrationsFS, "sql")
}

// Files lista os arquivos de migração embutidos
func Files() ([]string, error) {
	return fs.Glob(migrationsFS, "sql/*.sql")
}

// Up aplica todas as migrações pendentes
func Up(db *sql.DB, databaseName string) error {
	src, err := Source()
	if err != nil {
		return errors.Wrap(err, "erro ao abrir migrações embutidas")
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{DatabaseName: databaseName})
	if err != nil {
		return errors.Wrap(err, "erro ao preparar driver de migração")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "erro ao criar migrador")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Banco de dados já está na versão mais recente")
			return nil
		}
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	version, dirty, err := m.Version()
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Migrações aplicadas com sucesso")
	}

	return nil
}
