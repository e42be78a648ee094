// Package scheduler contém os serviços agendados do conector
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
	"github.com/vfg2006/shorten-rest-connector/pkg/metrics"
)

// Máximo de verificações simultâneas contra a Shorten.REST
const auditConcurrency = 5

var ErrAuditRunning = fmt.Errorf("auditoria de credenciais já está em execução")

type CredentialAuditConfig struct {
	CronSchedule string
	Enabled      bool
}

// CredentialAuditService verifica periodicamente todas as chaves armazenadas.
// Apenas lê e reporta; nenhuma chave é alterada ou removida.
type CredentialAuditService struct {
	scheduler  *gocron.Scheduler
	store      repository.PropertyStore
	integrator shortenrest.Integrator
	keyName    string
	config     CredentialAuditConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.CredentialAuditReport
}

func NewCredentialAuditService(
	store repository.PropertyStore,
	integrator shortenrest.Integrator,
	cfg *config.Config,
) *CredentialAuditService {
	auditConfig := CredentialAuditConfig{
		CronSchedule: cfg.CredentialAudit.CronSchedule,
		Enabled:      cfg.CredentialAudit.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job":           "credential-audit",
		"cron_schedule": auditConfig.CronSchedule,
	}).Info("Configuração da auditoria de credenciais carregada")

	return &CredentialAuditService{
		scheduler:  gocron.NewScheduler(time.Local),
		store:      store,
		integrator: integrator,
		keyName:    cfg.Properties.KeyName,
		config:     auditConfig,
	}
}

func (s *CredentialAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Auditoria de credenciais desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil {
			log.L.WithError(err).Error("Erro na auditoria de credenciais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de credenciais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron da auditoria de credenciais")
		s.scheduler.Stop()
	}()

	log.L.WithField("job", "credential-audit").Info("Cron da auditoria de credenciais iniciada")
	return nil
}

// RunAudit verifica cada chave armazenada e atualiza o gauge connector_stored_credentials
func (s *CredentialAuditService) RunAudit(ctx context.Context) (*domain.CredentialAuditReport, error) {
	if !s.begin() {
		log.L.Warn("Auditoria de credenciais já está em execução")
		return nil, ErrAuditRunning
	}

	return s.audit(ctx)
}

// audit executa uma auditoria já reservada por begin e a libera ao final
func (s *CredentialAuditService) audit(ctx context.Context) (*domain.CredentialAuditReport, error) {
	report := &domain.CredentialAuditReport{StartedAt: time.Now()}
	defer func() { s.finish(report) }()

	keys, err := s.store.List(ctx, s.keyName)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar chaves armazenadas: %w", err)
	}

	report.Total = len(keys)
	s.probeAll(ctx, keys, report)
	report.FinishedAt = time.Now()

	metrics.SetStoredCredentials(report.Valid, report.Invalid, report.Unreachable)

	log.L.WithFields(log.Fields{
		"job":         "credential-audit",
		"total":       report.Total,
		"valid":       report.Valid,
		"invalid":     report.Invalid,
		"unreachable": report.Unreachable,
	}).Info("Auditoria de credenciais concluída")

	return report, nil
}

func (s *CredentialAuditService) probeAll(ctx context.Context, keys map[string]string, report *domain.CredentialAuditReport) {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, auditConcurrency)
	)

	for userID, key := range keys {
		wg.Add(1)
		sem <- struct{}{}

		go func(userID, key string) {
			defer wg.Done()
			defer func() { <-sem }()

			result := s.integrator.Probe(ctx, key)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case !result.Performed:
				report.Unreachable++
			case result.Valid():
				report.Valid++
			default:
				report.Invalid++
				log.L.WithFields(log.Fields{
					"job":         "credential-audit",
					"user_id":     userID,
					"status_code": result.StatusCode,
				}).Warn("Chave armazenada recusada pela Shorten.REST")
			}
		}(userID, key)
	}

	wg.Wait()
}

func (s *CredentialAuditService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *CredentialAuditService) finish(report *domain.CredentialAuditReport) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if !report.FinishedAt.IsZero() {
		s.lastReport = report
	}
}

// TriggerManualSync dispara uma auditoria fora do agendamento
func (s *CredentialAuditService) TriggerManualSync() bool {
	if !s.begin() {
		log.L.Info("Auditoria de credenciais já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando auditoria manual de credenciais")
	go func() {
		if _, err := s.audit(context.Background()); err != nil {
			log.L.WithError(err).Error("Erro na auditoria manual de credenciais")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CredentialAuditService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
	}
}
