package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	"github.com/tandoorlabs/pos-backend/internal/models"
	"github.com/tandoorlabs/pos-backend/internal/utils/mapping"
)

type PgxBillRepository struct {
	BaseRepository
	ledgerSupport portsrepo.LedgerTransactionSupport
}

// newPgxBillRepository creates a new bill repository. The ledger support
// dependency lets a company-charged bill append its ledger entry on the
// same database transaction as the bill itself.
func newPgxBillRepository(pool *pgxpool.Pool, ledgerSupport portsrepo.LedgerTransactionSupport) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerSupport:  ledgerSupport,
	}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, order_type, payment_method, charged_employee_id, customer_name, customer_phone, notes, subtotal, cgst, sgst, total, created_by, created_by_name, created_at`

// SaveBill persists the bill header, its item rows, and the optional
// ledger charge in one transaction.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill, charge *domain.EmployeeTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	if charge != nil {
		if _, err := r.ledgerSupport.FindEmployeeByIDForUpdate(ctx, tx, charge.EmployeeID); err != nil {
			return err
		}
		if _, err := r.ledgerSupport.ApplyTransactionInTx(ctx, tx, *charge); err != nil {
			return err
		}
	}

	m := mapping.ToModelBill(bill)
	headerQuery := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.BillID, m.BillNumber, m.OrderType, m.PaymentMethod, m.ChargedEmployeeID,
		m.CustomerName, m.CustomerPhone, m.Notes,
		m.Subtotal, m.CGST, m.SGST, m.Total,
		m.CreatedBy, m.CreatedByName, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "bill "+m.BillID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert bill "+m.BillID, err)
	}

	itemQuery := `
		INSERT INTO bill_items (bill_id, menu_item_id, name, price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range bill.Items {
		_, err := tx.Exec(ctx, itemQuery,
			bill.BillID, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Subtotal,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert item for bill "+bill.BillID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindBillByID retrieves a bill with its items.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	var m models.Bill
	err := r.Pool.QueryRow(ctx, query, billID).Scan(
		&m.BillID, &m.BillNumber, &m.OrderType, &m.PaymentMethod, &m.ChargedEmployeeID,
		&m.CustomerName, &m.CustomerPhone, &m.Notes,
		&m.Subtotal, &m.CGST, &m.SGST, &m.Total,
		&m.CreatedBy, &m.CreatedByName, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bill by ID "+billID, err)
	}

	items, err := r.findItemsForBills(ctx, []string{billID})
	if err != nil {
		return nil, err
	}

	bill := mapping.ToDomainBill(m, items[billID])
	return &bill, nil
}

// ListBillsByDateRange retrieves bills created within [from, to), items
// included, ordered by creation time.
func (r *PgxBillRepository) ListBillsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills", err)
	}
	defer rows.Close()

	headers := []models.Bill{}
	billIDs := []string{}
	for rows.Next() {
		var m models.Bill
		if err := rows.Scan(
			&m.BillID, &m.BillNumber, &m.OrderType, &m.PaymentMethod, &m.ChargedEmployeeID,
			&m.CustomerName, &m.CustomerPhone, &m.Notes,
			&m.Subtotal, &m.CGST, &m.SGST, &m.Total,
			&m.CreatedBy, &m.CreatedByName, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill row", err)
		}
		headers = append(headers, m)
		billIDs = append(billIDs, m.BillID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill rows", err)
	}

	items, err := r.findItemsForBills(ctx, billIDs)
	if err != nil {
		return nil, err
	}

	bills := make([]domain.Bill, len(headers))
	for i, h := range headers {
		bills[i] = mapping.ToDomainBill(h, items[h.BillID])
	}
	return bills, nil
}

func (r *PgxBillRepository) findItemsForBills(ctx context.Context, billIDs []string) (map[string][]models.BillItem, error) {
	items := make(map[string][]models.BillItem, len(billIDs))
	if len(billIDs) == 0 {
		return items, nil
	}

	query := `
		SELECT bill_id, menu_item_id, name, price, quantity, subtotal
		FROM bill_items
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, menu_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, billIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bill items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.BillItem
		if err := rows.Scan(&m.BillID, &m.MenuItemID, &m.Name, &m.Price, &m.Quantity, &m.Subtotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill item row", err)
		}
		items[m.BillID] = append(items[m.BillID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill item rows", err)
	}
	return items, nil
}
