package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository/mocks"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// mutateAgainst faz o mock de Mutate se comportar como o repositório real:
// aplica a mutação sobre o item guardado e devolve o resultado
func mutateAgainst(item *domain.ContentItem) func(context.Context, string, func(*domain.ContentItem) error) (*domain.ContentItem, error) {
	return func(_ context.Context, _ string, apply func(*domain.ContentItem) error) (*domain.ContentItem, error) {
		if item == nil {
			return nil, nil
		}
		if err := apply(item); err != nil {
			return nil, err
		}
		return item, nil
	}
}

func existingItem() *domain.ContentItem {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return &domain.ContentItem{
		ID:       "Ab12Cd",
		UserID:   domain.DefaultUserID,
		Title:    "Roteiro de lançamento",
		Platform: "YouTube",
		Status:   domain.StatusIdea,
		Tags:     []string{"lançamento"},
		ContentChecklist: domain.ContentChecklist{
			MainPoints: true,
		},
		History: []domain.HistoryEntry{
			{Timestamp: created, NewStatus: domain.StatusIdea},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	var inserted *domain.ContentItem
	mockRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(item *domain.ContentItem) error {
			inserted = item
			return nil
		})

	item, err := service.CreateItem(&domain.CreateContentItemRequest{
		Title:    "Primeiro vídeo",
		Platform: "TikTok",
		Status:   domain.StatusIdea,
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, inserted, item)

	// Histórico nasce com exatamente uma entrada, sem status anterior
	require.Len(t, item.History, 1)
	assert.Nil(t, item.History[0].PreviousStatus)
	assert.Equal(t, domain.StatusIdea, item.History[0].NewStatus)

	// Checklist nasce todo desmarcado
	assert.Equal(t, domain.ContentChecklist{}, item.ContentChecklist)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.DefaultUserID, item.UserID)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestService_CreateItem_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	_, err := service.CreateItem(&domain.CreateContentItemRequest{Title: ""})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = service.CreateItem(&domain.CreateContentItemRequest{
		Title:  "Vídeo",
		Status: domain.ContentStatus("Draft"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_CreateItem_DefaultStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	item, err := service.CreateItem(&domain.CreateContentItemRequest{Title: "Sem status"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIdea, item.Status)
	require.Len(t, item.History, 1)
	assert.Equal(t, domain.StatusIdea, item.History[0].NewStatus)
}

func TestService_UpdateItem_StatusTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem()
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item))

	newStatus := domain.StatusScript
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScript, updated.Status)
	require.Len(t, updated.History, 2)

	entry := updated.History[1]
	require.NotNil(t, entry.PreviousStatus)
	assert.Equal(t, domain.StatusIdea, *entry.PreviousStatus)
	assert.Equal(t, domain.StatusScript, entry.NewStatus)
	assert.WithinDuration(t, time.Now(), entry.Timestamp, 5*time.Second)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestService_UpdateItem_SameStatusDoesNotAppendHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem()
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item))

	sameStatus := domain.StatusIdea
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{
		Status: &sameStatus,
	})
	require.NoError(t, err)

	// Escrita de status igual ao atual não polui o histórico
	assert.Len(t, updated.History, 1)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestService_UpdateItem_NonStatusFieldAdvancesUpdatedAtOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem()
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item))

	newTitle := "Roteiro revisado"
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "Roteiro revisado", updated.Title)
	assert.Len(t, updated.History, 1)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestService_UpdateItem_ChecklistMergesKeyByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem() // MainPoints já marcado
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item))

	intro := true
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{
		ContentChecklist: &domain.ChecklistUpdate{Intro: &intro},
	})
	require.NoError(t, err)

	// Somente a chave enviada muda; as outras três mantêm o valor anterior
	assert.True(t, updated.ContentChecklist.Intro)
	assert.True(t, updated.ContentChecklist.MainPoints)
	assert.False(t, updated.ContentChecklist.CallToAction)
	assert.False(t, updated.ContentChecklist.Outro)
	assert.Len(t, updated.History, 1)
}

func TestService_UpdateItem_MetricsMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem()
	item.Metrics = &domain.ContentMetrics{Views: 100, Likes: 10}
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item))

	views := int64(250)
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{
		Metrics: &domain.MetricsUpdate{Views: &views},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(250), updated.Metrics.Views)
	assert.Equal(t, int64(10), updated.Metrics.Likes)
}

func TestService_UpdateItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		Mutate(gomock.Any(), "zzzzzz", gomock.Any()).
		DoAndReturn(mutateAgainst(nil))

	newStatus := domain.StatusScript
	_, err := service.UpdateItem(context.Background(), "zzzzzz", &domain.UpdateContentItemRequest{
		Status: &newStatus,
	})
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestService_UpdateItem_InvalidStatusRejectedBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	badStatus := domain.ContentStatus("Archived")
	_, err := service.UpdateItem(context.Background(), "Ab12Cd", &domain.UpdateContentItemRequest{
		Status: &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// Cenário completo: criação, transição de status e mudança de título
func TestService_UpdateItem_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	item := existingItem()
	mockRepo.EXPECT().
		Mutate(gomock.Any(), item.ID, gomock.Any()).
		DoAndReturn(mutateAgainst(item)).
		Times(3)

	require.Len(t, item.History, 1)
	assert.Nil(t, item.History[0].PreviousStatus)
	assert.Equal(t, domain.StatusIdea, item.History[0].NewStatus)

	script := domain.StatusScript
	updated, err := service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{Status: &script})
	require.NoError(t, err)
	require.Len(t, updated.History, 2)
	assert.Equal(t, domain.StatusIdea, *updated.History[1].PreviousStatus)
	assert.Equal(t, domain.StatusScript, updated.History[1].NewStatus)

	title := "Novo título"
	updated, err = service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{Title: &title})
	require.NoError(t, err)
	assert.Len(t, updated.History, 2)

	// Reaplicar a mesma atualização de status é idempotente para o histórico
	updated, err = service.UpdateItem(context.Background(), item.ID, &domain.UpdateContentItemRequest{Status: &script})
	require.NoError(t, err)
	assert.Len(t, updated.History, 2)
}

func TestService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Delete("Ab12Cd").Return(true, nil)
	assert.NoError(t, service.DeleteItem("Ab12Cd"))

	mockRepo.EXPECT().Delete("zzzzzz").Return(false, nil)
	assert.ErrorIs(t, service.DeleteItem("zzzzzz"), ErrContentNotFound)
}

func TestService_GetItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentItemRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByID("zzzzzz").Return(nil, nil)

	_, err := service.GetItem("zzzzzz")
	assert.ErrorIs(t, err, ErrContentNotFound)
}
