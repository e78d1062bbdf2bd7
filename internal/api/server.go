package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/internal/api/handler"
	"github.com/vfg2006/business-growth-api/internal/api/handler/router"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/internal/scheduler"
	"github.com/vfg2006/business-growth-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-growth-api/internal/usecases/business"
	"github.com/vfg2006/business-growth-api/internal/usecases/insighting"
	"github.com/vfg2006/business-growth-api/internal/usecases/measuring"
	"github.com/vfg2006/business-growth-api/pkg/metrics"
	"github.com/vfg2006/business-growth-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	businessService business.BusinessService,
	measuringService measuring.MeasuringService,
	insightService insighting.Insighter,
	metricsCompletionSyncService *scheduler.MetricsCompletionSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		handler.CronJobTypeMetricsCompletion: metricsCompletionSyncService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr: fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler: NewHandler(
				config,
				router.WithRoutes(handler.Healthcheck(config)...),
				router.WithRoutes(handler.Authentication(authenticator)...),
				router.WithRoutes(handler.Business(businessService, measuringService, authenticator)...),
				router.WithRoutes(handler.AI(insightService)...),
				router.WithRoutes(handler.CronJobs(cronServices, authenticator)...),
			),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia global de middlewares
func NewHandler(config *config.Config, routes ...router.ConfigRouter) http.Handler {
	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		metrics.InstrumentHandler(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
