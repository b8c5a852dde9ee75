package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	"github.com/tandoorlabs/pos-backend/internal/models"
	"github.com/tandoorlabs/pos-backend/internal/utils/mapping"
)

type PgxMenuRepository struct {
	BaseRepository
}

func newPgxMenuRepository(pool *pgxpool.Pool) portsrepo.MenuRepositoryFacade {
	return &PgxMenuRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MenuRepositoryFacade = (*PgxMenuRepository)(nil)

const menuItemColumns = `menu_item_id, name, price, category, description, is_available, created_at, updated_at`

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var m models.MenuItem
	err := row.Scan(
		&m.MenuItemID, &m.Name, &m.Price, &m.Category, &m.Description,
		&m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgxMenuRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		INSERT INTO menu_items (menu_item_id, name, price, category, description, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MenuItemID, m.Name, m.Price, m.Category, m.Description, m.IsAvailable, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "menu item "+m.MenuItemID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert menu item "+m.MenuItemID, err)
	}
	return nil
}

func (r *PgxMenuRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		UPDATE menu_items
		SET name = $2, price = $3, category = $4, description = $5, is_available = $6, updated_at = $7
		WHERE menu_item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MenuItemID, m.Name, m.Price, m.Category, m.Description, m.IsAvailable, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update menu item "+m.MenuItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMenuRepository) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM menu_items WHERE menu_item_id = $1;`, menuItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete menu item "+menuItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMenuRepository) FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE menu_item_id = $1;`
	m, err := scanMenuItem(r.Pool.QueryRow(ctx, query, menuItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find menu item by ID "+menuItemID, err)
	}
	item := mapping.ToDomainMenuItem(m)
	return &item, nil
}

func (r *PgxMenuRepository) FindMenuItemsByIDs(ctx context.Context, menuItemIDs []string) (map[string]domain.MenuItem, error) {
	items := make(map[string]domain.MenuItem, len(menuItemIDs))
	if len(menuItemIDs) == 0 {
		return items, nil
	}

	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE menu_item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, menuItemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query menu items by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan menu item row", err)
		}
		items[m.MenuItemID] = mapping.ToDomainMenuItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating menu item rows", err)
	}
	return items, nil
}

func (r *PgxMenuRepository) ListMenuItems(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1 = '' OR category = $1)
		  AND (NOT $2 OR is_available)
		ORDER BY category, name;
	`
	rows, err := r.Pool.Query(ctx, query, category, onlyAvailable)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query menu items", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan menu item row", err)
		}
		items = append(items, mapping.ToDomainMenuItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating menu item rows", err)
	}
	return items, nil
}
