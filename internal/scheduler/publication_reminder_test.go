package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository/mocks"
	"github.com/kontenflow/kontenflow-api/internal/config"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

func newReminderService(t *testing.T) (*PublicationReminderService, *mocks.MockContentItemRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContentItemRepository(ctrl)

	cfg := &config.Config{}
	cfg.PublicationReminder.CronSchedule = "0 8 * * *"
	cfg.PublicationReminder.LookaheadDays = 1
	cfg.PublicationReminder.Enabled = false

	return NewPublicationReminderService(repo, cfg), repo
}

func TestRunReminder(t *testing.T) {
	service, repo := newReminderService(t)

	publicationDate := time.Now().Add(6 * time.Hour)
	dueItems := []*domain.ContentItem{
		{
			ID:              "Ab12Cd",
			Title:           "Roteiro de lançamento",
			Platform:        "YouTube",
			Status:          domain.StatusReadyToPublish,
			PublicationDate: &publicationDate,
		},
		{
			ID:     "Ef34Gh",
			Title:  "Corte para shorts",
			Status: domain.StatusReadyToPublish,
		},
	}

	repo.EXPECT().
		ListDueForPublication(gomock.Any()).
		DoAndReturn(func(until time.Time) ([]*domain.ContentItem, error) {
			// A janela de varredura cobre o lookahead configurado
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), until, time.Minute)
			return dueItems, nil
		})

	err := service.RunReminder()
	require.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 2, status.LastDueCount)
	require.NotNil(t, status.LastRunStartedAt)
	require.NotNil(t, status.LastRunCompletedAt)
	assert.False(t, status.LastRunCompletedAt.Before(*status.LastRunStartedAt))
}

func TestRunReminder_RepositoryError(t *testing.T) {
	service, repo := newReminderService(t)

	repoErr := errors.New("erro de conexão")
	repo.EXPECT().
		ListDueForPublication(gomock.Any()).
		Return(nil, repoErr)

	err := service.RunReminder()
	assert.ErrorIs(t, err, repoErr)

	// Mesmo com erro, o job é marcado como concluído para liberar a próxima execução
	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastRunCompletedAt)
}

func TestRunReminder_SkipWhenAlreadyRunning(t *testing.T) {
	service, repo := newReminderService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	repo.EXPECT().
		ListDueForPublication(gomock.Any()).
		DoAndReturn(func(until time.Time) ([]*domain.ContentItem, error) {
			close(started)
			<-release
			return []*domain.ContentItem{}, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- service.RunReminder()
	}()

	<-started

	// Segunda chamada concorrente não dispara nova varredura
	err := service.RunReminder()
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 0, status.LastDueCount)
}

func TestStatus_BeforeFirstRun(t *testing.T) {
	service, _ := newReminderService(t)

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, "0 8 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastRunStartedAt)
	assert.Nil(t, status.LastRunCompletedAt)
	assert.Zero(t, status.LastDueCount)
}

func TestStart_DisabledByConfig(t *testing.T) {
	service, _ := newReminderService(t)

	err := service.Start(context.Background())
	require.NoError(t, err)
}
