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
	"github.com/tandoorlabs/pos-backend/internal/utils/accounting"
	"github.com/tandoorlabs/pos-backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for employee accounts
// and their transaction logs.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const employeeColumns = `employee_id, employee_code, company_id, name, phone, active_balance, created_at`

// SaveEmployee persists a new employee record.
func (r *PgxLedgerRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_id, employee_code, company_id, name, phone, active_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.EmployeeCode, m.CompanyID, m.Name, m.Phone, m.ActiveBalance, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "employee "+m.EmployeeID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert employee "+m.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxLedgerRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID, &m.EmployeeCode, &m.CompanyID, &m.Name, &m.Phone, &m.ActiveBalance, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// ListEmployeesByCompany retrieves all employees of a company in code order.
func (r *PgxLedgerRepository) ListEmployeesByCompany(ctx context.Context, companyID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY employee_code;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees for company "+companyID, err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(
			&m.EmployeeID, &m.EmployeeCode, &m.CompanyID, &m.Name, &m.Phone, &m.ActiveBalance, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row for company "+companyID, err)
		}
		employees = append(employees, mapping.ToDomainEmployee(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows for company "+companyID, err)
	}
	return employees, nil
}

// FindEmployeeByIDForUpdate selects the employee and locks its row within
// the given transaction. The row lock is the per-employee critical section
// that serializes concurrent ledger writes for the same account.
func (r *PgxLedgerRepository) FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 FOR UPDATE;`

	var m models.Employee
	err := tx.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID, &m.EmployeeCode, &m.CompanyID, &m.Name, &m.Phone, &m.ActiveBalance, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock employee "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// ApplyTransactionInTx applies the entry's signed effect to the employee
// balance and inserts the ledger row, all on the caller's transaction.
// The employee row must already be locked via FindEmployeeByIDForUpdate.
func (r *PgxLedgerRepository) ApplyTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.EmployeeTransaction) (*domain.EmployeeTransaction, error) {
	delta, err := accounting.SignedAmount(txn)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute signed amount for transaction "+txn.TransactionID, err)
	}

	updateQuery := `
		UPDATE employees
		SET active_balance = active_balance + $2
		WHERE employee_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, txn.EmployeeID, delta)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update balance for employee "+txn.EmployeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO employee_transactions
			(transaction_id, employee_id, type, amount, description, payment_method, collector_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq;
	`
	err = tx.QueryRow(ctx, insertQuery,
		m.TransactionID, m.EmployeeID, m.Type, m.Amount, m.Description, m.PaymentMethod, m.CollectorName, m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	stored := mapping.ToDomainTransaction(m)
	return &stored, nil
}

// SaveTransaction appends a ledger entry and applies it to the employee's
// cached balance as one atomic unit: lock, update, insert, commit.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.EmployeeTransaction) (*domain.EmployeeTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	if _, err := r.FindEmployeeByIDForUpdate(ctx, tx, txn.EmployeeID); err != nil {
		return nil, err
	}

	stored, err := r.ApplyTransactionInTx(ctx, tx, txn)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stored, nil
}

// FindTransactionsByEmployeeID retrieves the employee's ledger in sequence
// order. The seq column, not the wall-clock timestamp, is the total order
// key; identical timestamps therefore cannot reorder the statement.
func (r *PgxLedgerRepository) FindTransactionsByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeTransaction, error) {
	query := `
		SELECT transaction_id, employee_id, type, amount, description, payment_method, collector_name, seq, created_at
		FROM employee_transactions
		WHERE employee_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for employee "+employeeID, err)
	}
	defer rows.Close()

	txns := []models.EmployeeTransaction{}
	for rows.Next() {
		var m models.EmployeeTransaction
		if err := rows.Scan(
			&m.TransactionID, &m.EmployeeID, &m.Type, &m.Amount, &m.Description,
			&m.PaymentMethod, &m.CollectorName, &m.Seq, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for employee "+employeeID, err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for employee "+employeeID, err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}
