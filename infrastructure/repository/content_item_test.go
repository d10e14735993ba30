package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/kontenflow/kontenflow-api/infrastructure/database/postgres"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

func newMockRepo(t *testing.T) (ContentItemRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewContentItemRepository(&postgres.Connection{DB: db}), mock
}

func contentItemRow(t *testing.T) *sqlmock.Rows {
	t.Helper()

	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)

	history := []byte(`[
		{"timestamp":"2024-03-10T12:00:00Z","newStatus":"Idea"},
		{"timestamp":"2024-03-11T09:30:00Z","previousStatus":"Idea","newStatus":"Script"}
	]`)
	checklist := []byte(`{"intro":true,"mainPoints":false,"callToAction":false,"outro":false}`)

	return sqlmock.NewRows(contentItemColumns).AddRow(
		"Ab12Cd",
		"default-user",
		"Roteiro de lançamento",
		"YouTube",
		"Script",
		[]byte("{lançamento,shorts}"),
		nil,
		checklist,
		nil,
		history,
		created,
		updated,
	)
}

func TestContentItemRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE id = $1")).
		WithArgs("Ab12Cd").
		WillReturnRows(contentItemRow(t))

	item, err := repo.GetByID("Ab12Cd")
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "Ab12Cd", item.ID)
	assert.Equal(t, domain.StatusScript, item.Status)
	assert.Equal(t, []string{"lançamento", "shorts"}, []string(item.Tags))

	// O histórico volta do JSONB na ordem em que foi gravado
	require.Len(t, item.History, 2)
	assert.Nil(t, item.History[0].PreviousStatus)
	assert.Equal(t, domain.StatusIdea, item.History[0].NewStatus)
	require.NotNil(t, item.History[1].PreviousStatus)
	assert.Equal(t, domain.StatusIdea, *item.History[1].PreviousStatus)
	assert.Equal(t, domain.StatusScript, item.History[1].NewStatus)

	// As chaves do checklist são independentes entre si
	assert.True(t, item.ContentChecklist.Intro)
	assert.False(t, item.ContentChecklist.MainPoints)

	assert.Nil(t, item.Metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE id = $1")).
		WithArgs("zzzzzz").
		WillReturnRows(sqlmock.NewRows(contentItemColumns))

	item, err := repo.GetByID("zzzzzz")
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_Mutate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE id = $1 FOR UPDATE")).
		WithArgs("Ab12Cd").
		WillReturnRows(contentItemRow(t))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE content_items SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now().UTC()
	item, err := repo.Mutate(context.Background(), "Ab12Cd", func(item *domain.ContentItem) error {
		previous := item.Status
		item.Status = domain.StatusRecorded
		item.History = append(item.History, domain.HistoryEntry{
			Timestamp:      now,
			PreviousStatus: &previous,
			NewStatus:      domain.StatusRecorded,
		})
		item.UpdatedAt = now
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, domain.StatusRecorded, item.Status)
	assert.Len(t, item.History, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_Mutate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE id = $1 FOR UPDATE")).
		WithArgs("zzzzzz").
		WillReturnRows(sqlmock.NewRows(contentItemColumns))
	mock.ExpectCommit()

	applied := false
	item, err := repo.Mutate(context.Background(), "zzzzzz", func(item *domain.ContentItem) error {
		applied = true
		return nil
	})
	require.NoError(t, err)

	// Conteúdo inexistente: mutação não é aplicada e nenhum UPDATE é emitido
	assert.Nil(t, item)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_Mutate_ApplyErrorRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM content_items WHERE id = $1 FOR UPDATE")).
		WithArgs("Ab12Cd").
		WillReturnRows(contentItemRow(t))
	mock.ExpectRollback()

	wantErr := assert.AnError
	item, err := repo.Mutate(context.Background(), "Ab12Cd", func(item *domain.ContentItem) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM content_items WHERE id = $1")).
		WithArgs("Ab12Cd").
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.Delete("Ab12Cd")
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM content_items WHERE id = $1")).
		WithArgs("zzzzzz").
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err = repo.Delete("zzzzzz")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentItemRepository_List_Filters(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status IN ($1,$2)")).
		WithArgs("Idea", "Script").
		WillReturnRows(contentItemRow(t))

	items, err := repo.List(&domain.ContentListFilters{
		Statuses: []domain.ContentStatus{domain.StatusIdea, domain.StatusScript},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ab12Cd", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
