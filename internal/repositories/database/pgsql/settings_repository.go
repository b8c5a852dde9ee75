package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	"github.com/tandoorlabs/pos-backend/internal/models"
	"github.com/tandoorlabs/pos-backend/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings reads the singleton settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	query := `
		SELECT id, shop_name, shop_address, shop_gst, shop_phone, shop_email,
		       cgst_rate, sgst_rate, printer_format, currency
		FROM settings
		WHERE id = $1;
	`
	var m models.AppSettings
	err := r.Pool.QueryRow(ctx, query, models.SettingsID).Scan(
		&m.ID, &m.ShopName, &m.ShopAddress, &m.ShopGST, &m.ShopPhone, &m.ShopEmail,
		&m.CGSTRate, &m.SGSTRate, &m.PrinterFormat, &m.Currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read settings", err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// PutSettings upserts the singleton settings row.
func (r *PgxSettingsRepository) PutSettings(ctx context.Context, settings domain.AppSettings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		INSERT INTO settings
			(id, shop_name, shop_address, shop_gst, shop_phone, shop_email,
			 cgst_rate, sgst_rate, printer_format, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			shop_name = EXCLUDED.shop_name,
			shop_address = EXCLUDED.shop_address,
			shop_gst = EXCLUDED.shop_gst,
			shop_phone = EXCLUDED.shop_phone,
			shop_email = EXCLUDED.shop_email,
			cgst_rate = EXCLUDED.cgst_rate,
			sgst_rate = EXCLUDED.sgst_rate,
			printer_format = EXCLUDED.printer_format,
			currency = EXCLUDED.currency;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.ShopName, m.ShopAddress, m.ShopGST, m.ShopPhone, m.ShopEmail,
		m.CGSTRate, m.SGSTRate, m.PrinterFormat, m.Currency,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to store settings", err)
	}
	return nil
}
