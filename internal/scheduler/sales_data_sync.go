package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-data-sync/infrastructure/repository"
	"github.com/vfg2006/sales-data-sync/internal/config"
	"github.com/vfg2006/sales-data-sync/internal/domain"
	"github.com/vfg2006/sales-data-sync/internal/usecases/syncing"
)

// SalesDataSyncConfig representa a configuração do agendador de vendas
type SalesDataSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
	Destination  string
}

// SalesDataSyncService gerencia o agendamento e a execução da sincronização de vendas
type SalesDataSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesDataSyncConfig
	syncer              syncing.Syncer
	salesRepo           repository.SalesDataRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
	now                 func() time.Time
	baseCtx             context.Context
}

func NewSalesDataSyncService(
	syncer syncing.Syncer,
	salesRepo repository.SalesDataRepository,
	appConfig *config.Config,
) *SalesDataSyncService {
	syncConfig := SalesDataSyncConfig{
		CronSchedule: appConfig.SalesSync.CronSchedule,
		LookbackDays: appConfig.SalesSync.LookbackDays,
		SyncEnabled:  appConfig.SalesSync.Enabled,
		Destination:  appConfig.Database.Name,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
		"destination":   syncConfig.Destination,
	}).Info("Configuração do agendador de vendas carregada")

	return &SalesDataSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		syncer:    syncer,
		salesRepo: salesRepo,
		now:       time.Now,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *SalesDataSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPreviousDays()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncPreviousDays sincroniza os últimos dias completos num único período
func (s *SalesDataSyncService) syncPreviousDays() {
	period := domain.PreviousDaysPeriod(s.now(), s.config.LookbackDays)

	if _, err := s.runSync(s.baseCtx, period, s.config.Destination); err != nil && !errors.Is(err, ErrSyncRunning) {
		logrus.WithError(err).Error("Erro na sincronização agendada de vendas")
	}
}

var ErrSyncRunning = errors.New("sincronização de vendas já em andamento")

// RunSync executa a sincronização de forma síncrona, respeitando a execução única
func (s *SalesDataSyncService) RunSync(ctx context.Context, period domain.SalesPeriod, destination string) (*domain.SyncResult, error) {
	if destination == "" {
		destination = s.config.Destination
	}
	return s.runSync(ctx, period, destination)
}

func (s *SalesDataSyncService) runSync(ctx context.Context, period domain.SalesPeriod, destination string) (*domain.SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"from_date": period.FromString(),
		"to_date":   period.ToString(),
	}).Info("Período para sincronização de vendas")

	result, err := s.syncer.Run(ctx, period, destination)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	if result != nil {
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	return result, err
}

// TriggerManualSync inicia manualmente a sincronização dos dias anteriores
func (s *SalesDataSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de vendas")
	go s.syncPreviousDays()
	return true
}

func (s *SalesDataSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SalesDataSyncService) GetStatus(ctx context.Context) map[string]any {
	s.syncMutex.Lock()
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
	s.syncMutex.Unlock()

	if s.salesRepo != nil {
		total, err := s.salesRepo.Count(ctx, s.config.Destination)
		if err != nil {
			logrus.WithError(err).Warn("Não foi possível contar os registros de vendas")
		} else {
			status["stored_records"] = total
		}
	}

	return status
}
