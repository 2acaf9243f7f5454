package repository

import (
	"context"
	"errors"
	"fmt"

	"cottage-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// settingsRepository implements the SettingsRepository interface using
// PostgreSQL. A single row with a fixed id holds the home-page content.
type settingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingsRepository creates a new PostgreSQL-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

// Get retrieves the settings row, or (nil, nil) when none exists yet.
func (r *settingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	query := `
		SELECT background_url, hero_text, sub_text
		FROM site_settings
		WHERE id = $1
	`

	var s model.SiteSettings
	err := r.pool.QueryRow(ctx, query, model.SiteSettingsID).
		Scan(&s.BackgroundURL, &s.HeroText, &s.SubText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Msg("site settings not configured yet")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query site settings")
		return nil, fmt.Errorf("failed to query site settings: %w", err)
	}

	return &s, nil
}

// Upsert writes the settings row, creating it if missing.
func (r *settingsRepository) Upsert(ctx context.Context, s *model.SiteSettings) error {
	query := `
		INSERT INTO site_settings (id, background_url, hero_text, sub_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET background_url = EXCLUDED.background_url,
		    hero_text = EXCLUDED.hero_text,
		    sub_text = EXCLUDED.sub_text
	`

	_, err := r.pool.Exec(ctx, query, model.SiteSettingsID, s.BackgroundURL, s.HeroText, s.SubText)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to upsert site settings")
		return fmt.Errorf("failed to upsert site settings: %w", err)
	}

	r.logger.Debug().Msg("site settings saved")
	return nil
}
