// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/kontenflow/kontenflow-api/infrastructure/database/postgres"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

const (
	contentItemsTable = "content_items"
)

var contentItemColumns = []string{
	"id",
	"user_id",
	"title",
	"platform",
	"status",
	"tags",
	"publication_date",
	"content_checklist",
	"metrics",
	"history",
	"created_at",
	"updated_at",
}

type ContentItemRepository interface {
	List(filters *domain.ContentListFilters) ([]*domain.ContentItem, error)
	GetByID(id string) (*domain.ContentItem, error)
	Insert(item *domain.ContentItem) error
	// Mutate carrega o conteúdo com lock de linha, aplica a mutação e
	// persiste o resultado, tudo dentro de uma única transação. Retorna
	// (nil, nil) quando o id não existe; nesse caso apply não é chamada
	// e nenhuma escrita acontece.
	Mutate(ctx context.Context, id string, apply func(*domain.ContentItem) error) (*domain.ContentItem, error)
	Delete(id string) (bool, error)
	ListDueForPublication(until time.Time) ([]*domain.ContentItem, error)
}

type contentItemRepository struct {
	conn *postgres.Connection
}

func NewContentItemRepository(conn *postgres.Connection) ContentItemRepository {
	return &contentItemRepository{
		conn: conn,
	}
}

func (r *contentItemRepository) List(filters *domain.ContentListFilters) ([]*domain.ContentItem, error) {
	queryBuilder := squirrel.
		Select(contentItemColumns...).
		From(contentItemsTable).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if len(filters.Statuses) > 0 {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filters.Statuses})
		}
		if len(filters.Platforms) > 0 {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"platform": filters.Platforms})
		}
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ContentItem, 0)
	for rows.Next() {
		item, err := scanContentItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *contentItemRepository) GetByID(id string) (*domain.ContentItem, error) {
	sqlQuery, args, err := squirrel.
		Select(contentItemColumns...).
		From(contentItemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	item, err := scanContentItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
	}

	return item, nil
}

func (r *contentItemRepository) Insert(item *domain.ContentItem) error {
	checklist, metrics, history, err := marshalContentBlobs(item)
	if err != nil {
		return err
	}

	sqlQuery, args, err := squirrel.
		Insert(contentItemsTable).
		Columns(contentItemColumns...).
		Values(
			item.ID,
			item.UserID,
			item.Title,
			item.Platform,
			item.Status,
			pq.Array(item.Tags),
			item.PublicationDate,
			checklist,
			metrics,
			history,
			item.CreatedAt,
			item.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *contentItemRepository) Mutate(ctx context.Context, id string, apply func(*domain.ContentItem) error) (*domain.ContentItem, error) {
	var mutated *domain.ContentItem

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		selectSQL, selectArgs, err := squirrel.
			Select(contentItemColumns...).
			From(contentItemsTable).
			Where(squirrel.Eq{"id": id}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		row := tx.QueryRow(selectSQL, selectArgs...)
		item, err := scanContentItem(row.Scan)
		if err != nil {
			if err == sql.ErrNoRows {
				// Conteúdo inexistente: sem escrita, Mutate retorna (nil, nil)
				return nil
			}
			return fmt.Errorf("erro ao escanear conteúdo: %w", err)
		}

		if err := apply(item); err != nil {
			return err
		}

		checklist, metrics, history, err := marshalContentBlobs(item)
		if err != nil {
			return err
		}

		updateSQL, updateArgs, err := squirrel.
			Update(contentItemsTable).
			Set("title", item.Title).
			Set("platform", item.Platform).
			Set("status", item.Status).
			Set("tags", pq.Array(item.Tags)).
			Set("publication_date", item.PublicationDate).
			Set("content_checklist", checklist).
			Set("metrics", metrics).
			Set("history", history).
			Set("updated_at", item.UpdatedAt).
			Where(squirrel.Eq{"id": item.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de atualização: %w", err)
		}

		if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de atualização: %w", err)
		}

		mutated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mutated, nil
}

func (r *contentItemRepository) Delete(id string) (bool, error) {
	sqlQuery, args, err := squirrel.
		Delete(contentItemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas removidas: %w", err)
	}

	return affected > 0, nil
}

func (r *contentItemRepository) ListDueForPublication(until time.Time) ([]*domain.ContentItem, error) {
	sqlQuery, args, err := squirrel.
		Select(contentItemColumns...).
		From(contentItemsTable).
		Where(squirrel.Eq{"status": domain.StatusReadyToPublish}).
		Where(squirrel.NotEq{"publication_date": nil}).
		Where(squirrel.LtOrEq{"publication_date": until}).
		OrderBy("publication_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ContentItem, 0)
	for rows.Next() {
		item, err := scanContentItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// marshalContentBlobs serializa checklist, métricas e histórico para as
// colunas JSONB. O histórico é gravado sempre por inteiro, preservando a
// ordem das entradas.
func marshalContentBlobs(item *domain.ContentItem) (checklist, metrics, history []byte, err error) {
	checklist, err = json.Marshal(item.ContentChecklist)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao serializar checklist: %w", err)
	}

	if item.Metrics != nil {
		metrics, err = json.Marshal(item.Metrics)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("erro ao serializar métricas: %w", err)
		}
	}

	if item.History == nil {
		item.History = []domain.HistoryEntry{}
	}
	history, err = json.Marshal(item.History)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao serializar histórico: %w", err)
	}

	return checklist, metrics, history, nil
}

// scanContentItem lê uma linha de content_items vinda de *sql.Row ou *sql.Rows
func scanContentItem(scan func(dest ...any) error) (*domain.ContentItem, error) {
	item := &domain.ContentItem{}

	var (
		tags            pq.StringArray
		publicationDate sql.NullTime
		checklistBlob   []byte
		metricsBlob     []byte
		historyBlob     []byte
	)

	err := scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Platform,
		&item.Status,
		&tags,
		&publicationDate,
		&checklistBlob,
		&metricsBlob,
		&historyBlob,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Tags = tags
	if publicationDate.Valid {
		item.PublicationDate = &publicationDate.Time
	}

	if len(checklistBlob) > 0 {
		if err := json.Unmarshal(checklistBlob, &item.ContentChecklist); err != nil {
			return nil, fmt.Errorf("erro ao desserializar checklist: %w", err)
		}
	}

	if len(metricsBlob) > 0 {
		item.Metrics = &domain.ContentMetrics{}
		if err := json.Unmarshal(metricsBlob, item.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
		}
	}

	item.History = []domain.HistoryEntry{}
	if len(historyBlob) > 0 {
		if err := json.Unmarshal(historyBlob, &item.History); err != nil {
			return nil, fmt.Errorf("erro ao desserializar histórico: %w", err)
		}
	}

	return item, nil
}
