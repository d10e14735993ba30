package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/kontenflow/kontenflow-api/infrastructure/database/postgres"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

const (
	sweetSpotEntriesTable = "sweet_spot_entries"
)

var sweetSpotEntryColumns = []string{
	"id",
	"user_id",
	"niche",
	"account",
	"keywords",
	"audience",
	"revenue_stream",
	"pricing",
	"created_at",
	"updated_at",
}

type SweetSpotEntryRepository interface {
	List(userID string) ([]*domain.SweetSpotEntry, error)
	GetByID(id string) (*domain.SweetSpotEntry, error)
	Insert(entry *domain.SweetSpotEntry) error
	Update(entry *domain.SweetSpotEntry) error
	Delete(id string) (bool, error)
}

type sweetSpotEntryRepository struct {
	conn *postgres.Connection
}

func NewSweetSpotEntryRepository(conn *postgres.Connection) SweetSpotEntryRepository {
	return &sweetSpotEntryRepository{
		conn: conn,
	}
}

func (r *sweetSpotEntryRepository) List(userID string) ([]*domain.SweetSpotEntry, error) {
	sqlQuery, args, err := squirrel.
		Select(sweetSpotEntryColumns...).
		From(sweetSpotEntriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("niche ASC", "created_at ASC").
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

	entries := make([]*domain.SweetSpotEntry, 0)
	for rows.Next() {
		entry := &domain.SweetSpotEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Niche,
			&entry.Account,
			&entry.Keywords,
			&entry.Audience,
			&entry.RevenueStream,
			&entry.Pricing,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *sweetSpotEntryRepository) GetByID(id string) (*domain.SweetSpotEntry, error) {
	sqlQuery, args, err := squirrel.
		Select(sweetSpotEntryColumns...).
		From(sweetSpotEntriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.SweetSpotEntry{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Niche,
		&entry.Account,
		&entry.Keywords,
		&entry.Audience,
		&entry.RevenueStream,
		&entry.Pricing,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
	}

	return entry, nil
}

func (r *sweetSpotEntryRepository) Insert(entry *domain.SweetSpotEntry) error {
	sqlQuery, args, err := squirrel.
		Insert(sweetSpotEntriesTable).
		Columns(sweetSpotEntryColumns...).
		Values(
			entry.ID,
			entry.UserID,
			entry.Niche,
			entry.Account,
			entry.Keywords,
			entry.Audience,
			entry.RevenueStream,
			entry.Pricing,
			entry.CreatedAt,
			entry.UpdatedAt,
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

func (r *sweetSpotEntryRepository) Update(entry *domain.SweetSpotEntry) error {
	sqlQuery, args, err := squirrel.
		Update(sweetSpotEntriesTable).
		Set("niche", entry.Niche).
		Set("account", entry.Account).
		Set("keywords", entry.Keywords).
		Set("audience", entry.Audience).
		Set("revenue_stream", entry.RevenueStream).
		Set("pricing", entry.Pricing).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	return nil
}

func (r *sweetSpotEntryRepository) Delete(id string) (bool, error) {
	sqlQuery, args, err := squirrel.
		Delete(sweetSpotEntriesTable).
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
