// Package sweetspot implementa o cadastro das entradas de alcance por nicho,
// o registro único de configuração e a projeção de audiência/receita.
package sweetspot

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository"
	"github.com/kontenflow/kontenflow-api/internal/config"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"github.com/kontenflow/kontenflow-api/pkg/utils"
)

type SweetSpotService interface {
	ListEntries() ([]*domain.SweetSpotEntry, error)
	GetEntry(id string) (*domain.SweetSpotEntry, error)
	CreateEntry(req *domain.CreateSweetSpotEntryRequest) (*domain.SweetSpotEntry, error)
	UpdateEntry(id string, req *domain.UpdateSweetSpotEntryRequest) (*domain.SweetSpotEntry, error)
	DeleteEntry(id string) error

	GetSettings() (*domain.SweetSpotSettings, error)
	UpdateSettings(req *domain.UpdateSweetSpotSettingsRequest) (*domain.SweetSpotSettings, error)

	Analyze() (*domain.SweetSpotAnalysis, error)
}

type Service struct {
	entryRepo    repository.SweetSpotEntryRepository
	settingsRepo repository.SweetSpotSettingsRepository
	cfg          config.SweetSpot
}

func NewService(
	entryRepo repository.SweetSpotEntryRepository,
	settingsRepo repository.SweetSpotSettingsRepository,
	cfg *config.Config,
) SweetSpotService {
	return &Service{
		entryRepo:    entryRepo,
		settingsRepo: settingsRepo,
		cfg:          cfg.SweetSpot,
	}
}

func (s *Service) ListEntries() ([]*domain.SweetSpotEntry, error) {
	entries, err := s.entryRepo.List(domain.DefaultUserID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar entradas do sweet spot")
		return nil, ErrDatabaseOperation
	}
	return entries, nil
}

func (s *Service) GetEntry(id string) (*domain.SweetSpotEntry, error) {
	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar entrada do sweet spot")
		return nil, ErrDatabaseOperation
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (s *Service) CreateEntry(req *domain.CreateSweetSpotEntryRequest) (*domain.SweetSpotEntry, error) {
	if req == nil {
		return nil, ErrNicheRequired
	}
	if err := validateEntry(req.Niche, req.Account, req.Audience); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	now := time.Now().UTC()
	entry := &domain.SweetSpotEntry{
		ID:            id,
		UserID:        domain.DefaultUserID,
		Niche:         req.Niche,
		Account:       req.Account,
		Keywords:      req.Keywords,
		Audience:      req.Audience,
		RevenueStream: req.RevenueStream,
		Pricing:       req.Pricing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.entryRepo.Insert(entry); err != nil {
		logrus.WithError(err).Error("Erro ao inserir entrada do sweet spot")
		return nil, ErrDatabaseOperation
	}

	return entry, nil
}

func (s *Service) UpdateEntry(id string, req *domain.UpdateSweetSpotEntryRequest) (*domain.SweetSpotEntry, error) {
	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar entrada do sweet spot")
		return nil, ErrDatabaseOperation
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	if req == nil {
		req = &domain.UpdateSweetSpotEntryRequest{}
	}

	if req.Niche != nil {
		entry.Niche = *req.Niche
	}
	if req.Account != nil {
		entry.Account = *req.Account
	}
	if req.Keywords != nil {
		entry.Keywords = *req.Keywords
	}
	if req.Audience != nil {
		entry.Audience = *req.Audience
	}
	if req.RevenueStream != nil {
		entry.RevenueStream = *req.RevenueStream
	}
	if req.Pricing != nil {
		entry.Pricing = *req.Pricing
	}

	if err := validateEntry(entry.Niche, entry.Account, entry.Audience); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := s.entryRepo.Update(entry); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar entrada do sweet spot")
		return nil, ErrDatabaseOperation
	}

	return entry, nil
}

func (s *Service) DeleteEntry(id string) error {
	found, err := s.entryRepo.Delete(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover entrada do sweet spot")
		return ErrDatabaseOperation
	}
	if !found {
		return ErrEntryNotFound
	}
	return nil
}

// GetSettings retorna o registro de configuração, criando o registro
// padrão na primeira leitura
func (s *Service) GetSettings() (*domain.SweetSpotSettings, error) {
	settings, err := s.settingsRepo.Get(domain.DefaultUserID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar configuração do sweet spot")
		return nil, ErrDatabaseOperation
	}

	if settings == nil {
		settings = &domain.SweetSpotSettings{
			UserID:               domain.DefaultUserID,
			TargetMonthlyRevenue: s.cfg.DefaultTargetRevenue,
			UpdatedAt:            time.Now().UTC(),
		}
		if err := s.settingsRepo.Upsert(settings); err != nil {
			logrus.WithError(err).Error("Erro ao criar configuração padrão do sweet spot")
			return nil, ErrDatabaseOperation
		}
	}

	return settings, nil
}

func (s *Service) UpdateSettings(req *domain.UpdateSweetSpotSettingsRequest) (*domain.SweetSpotSettings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	if req != nil && req.TargetMonthlyRevenue != nil {
		if *req.TargetMonthlyRevenue < 0 {
			return nil, ErrNegativeTarget
		}
		settings.TargetMonthlyRevenue = *req.TargetMonthlyRevenue
	}

	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.Upsert(settings); err != nil {
		logrus.WithError(err).Error("Erro ao gravar configuração do sweet spot")
		return nil, ErrDatabaseOperation
	}

	return settings, nil
}

// Analyze roda a projeção sobre as entradas cadastradas usando a meta de
// receita do registro de configuração
func (s *Service) Analyze() (*domain.SweetSpotAnalysis, error) {
	entries, err := s.ListEntries()
	if err != nil {
		return nil, err
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	return Analyze(entries, settings.TargetMonthlyRevenue, AnalyzerConfig{
		KeyNicheLabel:    s.cfg.KeyNicheLabel,
		KeyNicheRate:     s.cfg.KeyNicheRate,
		DefaultNicheRate: s.cfg.DefaultNicheRate,
		ConversionRate:   s.cfg.ConversionRate,
		SalesRate:        s.cfg.SalesRate,
	}), nil
}

func validateEntry(niche, account string, audience int64) error {
	if niche == "" {
		return ErrNicheRequired
	}
	if account == "" {
		return ErrAccountRequired
	}
	if audience < 0 {
		return ErrNegativeAudience
	}
	return nil
}
