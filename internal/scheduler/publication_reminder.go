// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository"
	"github.com/kontenflow/kontenflow-api/internal/config"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

type PublicationReminderConfig struct {
	CronSchedule  string
	LookaheadDays int
	Enabled       bool
}

// PublicationReminderStatus é o retrato do job exposto pela API de status
type PublicationReminderStatus struct {
	Enabled            bool       `json:"enabled"`
	CronSchedule       string     `json:"cronSchedule"`
	Running            bool       `json:"running"`
	LastRunStartedAt   *time.Time `json:"lastRunStartedAt,omitempty"`
	LastRunCompletedAt *time.Time `json:"lastRunCompletedAt,omitempty"`
	LastDueCount       int        `json:"lastDueCount"`
}

// PublicationReminderService varre diariamente os conteúdos prontos para
// publicar cuja data de publicação está dentro da janela configurada
type PublicationReminderService struct {
	scheduler          *gocron.Scheduler
	contentRepo        repository.ContentItemRepository
	config             PublicationReminderConfig
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDueCount       int
}

func NewPublicationReminderService(
	contentRepo repository.ContentItemRepository,
	cfg *config.Config,
) *PublicationReminderService {
	reminderConfig := PublicationReminderConfig{
		CronSchedule:  cfg.PublicationReminder.CronSchedule, // Default: 8h da manhã todos os dias
		LookaheadDays: cfg.PublicationReminder.LookaheadDays,
		Enabled:       cfg.PublicationReminder.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reminderConfig.CronSchedule,
		"lookahead_days": reminderConfig.LookaheadDays,
	}).Info("Configuração do agendador de lembrete de publicação carregada")

	return &PublicationReminderService{
		scheduler:   scheduler,
		contentRepo: contentRepo,
		config:      reminderConfig,
	}
}

func (s *PublicationReminderService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de lembrete de publicação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de lembrete de publicação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReminder(); err != nil {
			logrus.WithError(err).Error("Erro na execução do lembrete de publicação")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembrete de publicação: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de lembrete de publicação")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara o lembrete fora do horário agendado
func (s *PublicationReminderService) TriggerManualRun() {
	go func() {
		if err := s.RunReminder(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do lembrete de publicação")
		}
	}()
}

func (s *PublicationReminderService) RunReminder() error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Warn("Lembrete de publicação já está em execução")
		return nil
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de conteúdos com publicação próxima")

	until := time.Now().AddDate(0, 0, s.config.LookaheadDays)
	dueItems, err := s.contentRepo.ListDueForPublication(until)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conteúdos com publicação próxima")
		return err
	}

	s.runMutex.Lock()
	s.lastDueCount = len(dueItems)
	s.runMutex.Unlock()

	for _, item := range dueItems {
		s.logDueItem(item)
	}

	logrus.WithField("due_count", len(dueItems)).Info("Varredura de conteúdos com publicação próxima concluída")

	return nil
}

func (s *PublicationReminderService) logDueItem(item *domain.ContentItem) {
	fields := logrus.Fields{
		"content_id": item.ID,
		"title":      item.Title,
		"platform":   item.Platform,
	}
	if item.PublicationDate != nil {
		fields["publication_date"] = item.PublicationDate.Format("2006-01-02")
	}

	logrus.WithFields(fields).Info("Conteúdo pronto para publicar com data próxima")
}

// Status retorna o estado atual do job para a API de status
func (s *PublicationReminderService) Status() PublicationReminderStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := PublicationReminderStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.runRunning,
		LastDueCount: s.lastDueCount,
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastRunStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastRunCompletedAt = &completedAt
	}

	return status
}
