// Package content implementa o ciclo de vida de um conteúdo, incluindo a
// regra de histórico de status. A regra vive somente aqui: todos os
// transportes (REST, jobs) são adaptadores finos sobre este serviço.
package content

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"github.com/kontenflow/kontenflow-api/pkg/utils"
)

type ContentService interface {
	ListItems(filters *domain.ContentListFilters) ([]*domain.ContentItem, error)
	GetItem(id string) (*domain.ContentItem, error)
	CreateItem(req *domain.CreateContentItemRequest) (*domain.ContentItem, error)
	UpdateItem(ctx context.Context, id string, req *domain.UpdateContentItemRequest) (*domain.ContentItem, error)
	DeleteItem(id string) error
}

type Service struct {
	repo repository.ContentItemRepository
}

func NewService(repo repository.ContentItemRepository) ContentService {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListItems(filters *domain.ContentListFilters) ([]*domain.ContentItem, error) {
	items, err := s.repo.List(filters)
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return items, nil
}

func (s *Service) GetItem(id string) (*domain.ContentItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	if item == nil {
		return nil, ErrContentNotFound
	}
	return item, nil
}

// CreateItem cria um conteúdo novo. O checklist nasce todo desmarcado e o
// histórico nasce com exatamente uma entrada, registrando o status inicial
// sem status anterior.
func (s *Service) CreateItem(req *domain.CreateContentItemRequest) (*domain.ContentItem, error) {
	if req == nil || req.Title == "" {
		return nil, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = domain.StatusIdea
	}
	if !status.Valid() {
		return nil, NewContentError(ErrInvalidStatus, "", string(status))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	now := time.Now().UTC()
	item := &domain.ContentItem{
		ID:              id,
		UserID:          domain.DefaultUserID,
		Title:           req.Title,
		Platform:        req.Platform,
		Status:          status,
		Tags:            req.Tags,
		PublicationDate: req.PublicationDate,
		CreatedAt:       now,
		UpdatedAt:       now,
		History: []domain.HistoryEntry{
			{Timestamp: now, NewStatus: status},
		},
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if err := s.repo.Insert(item); err != nil {
		logrus.WithError(err).Error("Erro ao inserir conteúdo")
		return nil, ErrDatabaseOperation
	}

	return item, nil
}

// UpdateItem aplica uma atualização parcial sobre um conteúdo existente.
// A leitura, a mutação e a escrita acontecem em uma única transação, então
// duas atualizações concorrentes do mesmo conteúdo serializam em vez de
// perder uma entrada de histórico.
//
// Regra de histórico: um status presente e diferente do atual gera
// exatamente uma entrada nova; um status igual ao atual não gera nenhuma;
// mudanças em outros campos nunca geram entrada. updated_at avança em
// qualquer mutação.
func (s *Service) UpdateItem(ctx context.Context, id string, req *domain.UpdateContentItemRequest) (*domain.ContentItem, error) {
	if req == nil {
		req = &domain.UpdateContentItemRequest{}
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, NewContentErrorWithID(ErrInvalidStatus, "", id, string(*req.Status))
	}

	item, err := s.repo.Mutate(ctx, id, func(item *domain.ContentItem) error {
		now := time.Now().UTC()

		if req.Status != nil && *req.Status != item.Status {
			previous := item.Status
			item.History = append(item.History, domain.HistoryEntry{
				Timestamp:      now,
				PreviousStatus: &previous,
				NewStatus:      *req.Status,
			})
		}

		applyUpdate(item, req)
		item.UpdatedAt = now
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar conteúdo")
		return nil, ErrDatabaseOperation
	}
	if item == nil {
		return nil, ErrContentNotFound
	}

	return item, nil
}

func (s *Service) DeleteItem(id string) error {
	found, err := s.repo.Delete(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover conteúdo")
		return ErrDatabaseOperation
	}
	if !found {
		return ErrContentNotFound
	}
	return nil
}

// applyUpdate aplica sobre o conteúdo somente os campos presentes na
// requisição. Checklist e métricas são mesclados chave a chave: as chaves
// ausentes mantêm o valor atual.
func applyUpdate(item *domain.ContentItem, req *domain.UpdateContentItemRequest) {
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Platform != nil {
		item.Platform = *req.Platform
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Tags != nil {
		item.Tags = *req.Tags
		if item.Tags == nil {
			item.Tags = []string{}
		}
	}
	if req.PublicationDate != nil {
		item.PublicationDate = req.PublicationDate
	}

	if req.ContentChecklist != nil {
		mergeChecklist(&item.ContentChecklist, req.ContentChecklist)
	}

	if req.Metrics != nil {
		if item.Metrics == nil {
			item.Metrics = &domain.ContentMetrics{}
		}
		mergeMetrics(item.Metrics, req.Metrics)
	}
}

func mergeChecklist(checklist *domain.ContentChecklist, update *domain.ChecklistUpdate) {
	if update.Intro != nil {
		checklist.Intro = *update.Intro
	}
	if update.MainPoints != nil {
		checklist.MainPoints = *update.MainPoints
	}
	if update.CallToAction != nil {
		checklist.CallToAction = *update.CallToAction
	}
	if update.Outro != nil {
		checklist.Outro = *update.Outro
	}
}

func mergeMetrics(metrics *domain.ContentMetrics, update *domain.MetricsUpdate) {
	if update.Views != nil {
		metrics.Views = *update.Views
	}
	if update.Likes != nil {
		metrics.Likes = *update.Likes
	}
	if update.Comments != nil {
		metrics.Comments = *update.Comments
	}
	if update.Shares != nil {
		metrics.Shares = *update.Shares
	}
	if update.Rating != nil {
		metrics.Rating = *update.Rating
	}
	if update.Insights != nil {
		metrics.Insights = *update.Insights
	}
}
