// Package scheduler contém os serviços de agendamento de rotinas em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-growth-api/infrastructure/repository"
	"github.com/vfg2006/business-growth-api/internal/config"
	"github.com/vfg2006/business-growth-api/pkg/metrics"
)

const metricsCompletionJob = "metrics_completion_sync"

type MetricsCompletionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MetricsCompletionSyncService marca como concluído o cadastro de métricas
// dos negócios que já têm métricas gravadas mas ainda estão com a flag desligada
type MetricsCompletionSyncService struct {
	scheduler           *gocron.Scheduler
	businessRepo        repository.BusinessRepository
	config              MetricsCompletionSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncResult resume uma execução da rotina
type SyncResult struct {
	Pending int
	Updated int
	Failed  int
}

func NewMetricsCompletionSyncService(
	businessRepo repository.BusinessRepository,
	cfg *config.Config,
) *MetricsCompletionSyncService {
	syncConfig := MetricsCompletionSyncConfig{
		CronSchedule: cfg.MetricsCompletionSync.CronSchedule, // Default: a cada 30 minutos
		SyncEnabled:  cfg.MetricsCompletionSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de conclusão de métricas carregada")

	return &MetricsCompletionSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		businessRepo: businessRepo,
		config:       syncConfig,
	}
}

func (s *MetricsCompletionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de conclusão de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de conclusão de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncMetricsCompletion(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de conclusão de métricas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de conclusão de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de conclusão de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncMetricsCompletion executa uma rodada; chamadas concorrentes retornam sem fazer nada
func (s *MetricsCompletionSyncService) SyncMetricsCompletion(ctx context.Context) (*SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de conclusão de métricas já está em execução")
		return &SyncResult{}, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	result, err := s.syncPending(ctx)
	metrics.RecordSchedulerRun(metricsCompletionJob, err == nil)

	return result, err
}

func (s *MetricsCompletionSyncService) syncPending(ctx context.Context) (*SyncResult, error) {
	logger := logrus.WithField("job", metricsCompletionJob)

	pending, err := s.businessRepo.ListPendingMetricsCompletion(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar negócios com métricas pendentes de conclusão")
		return nil, err
	}

	result := &SyncResult{Pending: len(pending)}
	if len(pending) == 0 {
		logger.Debug("Nenhum negócio pendente de conclusão de métricas")
		return result, nil
	}

	for _, businessID := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		matched, err := s.businessRepo.SetMetricsCompleted(ctx, businessID)
		if err != nil {
			logger.WithError(err).WithField("business_id", businessID).Warn("Erro ao marcar métricas como concluídas")
			result.Failed++
			continue
		}

		if matched {
			result.Updated++
		}
	}

	logger.WithFields(logrus.Fields{
		"pending": result.Pending,
		"updated": result.Updated,
		"failed":  result.Failed,
	}).Info("Sincronização de conclusão de métricas finalizada")

	return result, nil
}

// LastSync retorna o início e o fim da última execução
func (s *MetricsCompletionSyncService) LastSync() (time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}

// TriggerManualSync dispara uma rodada fora do agendamento, sem esperar o resultado
func (s *MetricsCompletionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de conclusão de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de conclusão de métricas")
	go func() {
		if _, err := s.SyncMetricsCompletion(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de conclusão de métricas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *MetricsCompletionSyncService) GetStatus() map[string]any {
	started, completed := s.LastSync()

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   started,
		"last_sync_completed_at": completed,
	}
}
