package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/kontenflow/kontenflow-api/infrastructure/database/postgres"
	"github.com/kontenflow/kontenflow-api/internal/domain"
)

const (
	sweetSpotSettingsTable = "sweet_spot_settings"
)

type SweetSpotSettingsRepository interface {
	Get(userID string) (*domain.SweetSpotSettings, error)
	Upsert(settings *domain.SweetSpotSettings) error
}

type sweetSpotSettingsRepository struct {
	conn *postgres.Connection
}

func NewSweetSpotSettingsRepository(conn *postgres.Connection) SweetSpotSettingsRepository {
	return &sweetSpotSettingsRepository{
		conn: conn,
	}
}

func (r *sweetSpotSettingsRepository) Get(userID string) (*domain.SweetSpotSettings, error) {
	sqlQuery, args, err := squirrel.
		Select("user_id", "target_monthly_revenue", "updated_at").
		From(sweetSpotSettingsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	settings := &domain.SweetSpotSettings{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&settings.UserID,
		&settings.TargetMonthlyRevenue,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	return settings, nil
}

func (r *sweetSpotSettingsRepository) Upsert(settings *domain.SweetSpotSettings) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(sweetSpotSettingsTable).
		Columns("user_id", "target_monthly_revenue", "updated_at").
		Values(settings.UserID, settings.TargetMonthlyRevenue, settings.UpdatedAt).
		Suffix(`
		ON CONFLICT (user_id) DO UPDATE SET
			target_monthly_revenue = EXCLUDED.target_monthly_revenue,
			updated_at = EXCLUDED.updated_at
	`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de upsert: %w", err)
	}

	return nil
}
