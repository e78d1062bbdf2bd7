package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/business-growth-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/business-growth-api/infrastructure/migration"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/api"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/internal/scheduler"
	"github.com/vfg2006/business-growth-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-growth-api/internal/usecases/business"
	"github.com/vfg2006/business-growth-api/internal/usecases/insighting"
	"github.com/vfg2006/business-growth-api/internal/usecases/measuring"
	"github.com/vfg2006/business-growth-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetEnvironment(cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		if err := migration.Up(pgConn.DB, cfg.Database.Name); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	businessRepo := repository.NewBusinessRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	interactionRepo := repository.NewInteractionRepository(pgConn)

	authenticator, err := authenticating.NewService(businessRepo, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	geminiClient, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Gemini")
	}
	geminiIntegrator := gemini.New(geminiClient)

	businessService := business.NewService(businessRepo, metricRepo, cfg)
	measuringService := measuring.NewMetricsService(metricRepo)
	insightService := insighting.NewInsightService(businessRepo, metricRepo, interactionRepo, geminiIntegrator)

	metricsCompletionSyncService := scheduler.NewMetricsCompletionSyncService(businessRepo, cfg)
	if err := metricsCompletionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conclusão de métricas")
	} else {
		logrus.Info("Agendador de conclusão de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		businessService,
		measuringService,
		insightService,
		metricsCompletionSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
