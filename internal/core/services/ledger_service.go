package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
	"github.com/tandoorlabs/pos-backend/internal/utils/accounting"
)

// employeeCodeCounter is the meta counter that backs employee code
// allocation. Codes are global across companies, so one counter serves
// the whole store.
const employeeCodeCounter = "employee_code"

// ledgerService is the employee credit ledger engine: companies,
// employee accounts, and the append-only transaction log with its
// cached balance projection.
type ledgerService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	counterRepo portsrepo.CounterRepository
}

// NewLedgerService creates a new ledger engine service.
func NewLedgerService(companyRepo portsrepo.CompanyRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		companyRepo: companyRepo,
		ledgerRepo:  ledgerRepo,
		counterRepo: counterRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateCompany persists a new company.
func (s *ledgerService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      name,
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to save company", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompanies retrieves all companies.
func (s *ledgerService) GetCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.ListCompanies(ctx)
}

// GetCompanyByID retrieves a single company.
func (s *ledgerService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// CreateEmployee opens a new credit account under a company. The human
// facing code comes from the store-owned counter, so codes stay unique
// and monotonic across all companies even under concurrent creation.
func (s *ledgerService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}

	// The company must exist before an account can be opened under it.
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		logger.Warn("Company lookup failed for employee creation", slog.String("company_id", req.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	// A failed save after this point leaves a gap in the code sequence,
	// which is acceptable; reusing a code is not.
	next, err := s.counterRepo.NextValue(ctx, employeeCodeCounter)
	if err != nil {
		logger.Error("Failed to allocate employee code", slog.String("error", err.Error()))
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:    uuid.NewString(),
		EmployeeCode:  fmt.Sprintf("EMP-%05d", next),
		CompanyID:     req.CompanyID,
		Name:          name,
		Phone:         strings.TrimSpace(req.Phone),
		ActiveBalance: decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.ledgerRepo.SaveEmployee(ctx, employee); err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()), slog.String("employee_code", employee.EmployeeCode))
		return nil, err
	}

	logger.Info("Employee account opened", slog.String("employee_id", employee.EmployeeID), slog.String("employee_code", employee.EmployeeCode))
	return &employee, nil
}

// GetEmployeesByCompany retrieves all employees of a company. The company
// must exist; an existing company with no employees yields an empty slice.
func (s *ledgerService) GetEmployeesByCompany(ctx context.Context, companyID string) ([]domain.Employee, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListEmployeesByCompany(ctx, companyID)
}

// GetEmployeeByID retrieves a single employee.
func (s *ledgerService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.ledgerRepo.FindEmployeeByID(ctx, employeeID)
}

// AddTransaction appends a ledger entry and updates the cached balance
// atomically. The submitted amount is coerced to its absolute value; a
// zero amount is rejected.
func (s *ledgerService) AddTransaction(ctx context.Context, employeeID string, req dto.AddTransactionRequest) (*domain.EmployeeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount := req.Amount.Abs()
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must be non-zero", apperrors.ErrValidation)
	}

	txn := domain.EmployeeTransaction{
		TransactionID: uuid.NewString(),
		EmployeeID:    employeeID,
		Type:          req.Type,
		Amount:        amount,
		Description:   strings.TrimSpace(req.Description),
		CreatedAt:     time.Now().UTC(),
	}
	if req.Payment != nil {
		txn.Payment = &domain.PaymentDetails{
			Method:    strings.TrimSpace(req.Payment.Method),
			Collector: strings.TrimSpace(req.Payment.Collector),
		}
	}

	stored, err := s.ledgerRepo.SaveTransaction(ctx, txn)
	if err != nil {
		logger.Error("Failed to save ledger transaction", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, err
	}

	logger.Info("Ledger transaction appended",
		slog.String("transaction_id", stored.TransactionID),
		slog.String("employee_id", employeeID),
		slog.String("type", string(stored.Type)),
		slog.Int64("seq", stored.Seq),
	)
	return stored, nil
}

// ListTransactions retrieves the employee's ledger entries in sequence
// order. The employee must exist.
func (s *ledgerService) ListTransactions(ctx context.Context, employeeID string) ([]domain.EmployeeTransaction, error) {
	if _, err := s.ledgerRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindTransactionsByEmployeeID(ctx, employeeID)
}

// GetAccountSummary rebuilds the employee's full statement with running
// balances by folding over the ordered ledger. The summary is a pure
// read: calling it never changes stored state, and a missing employee
// yields nil rather than an error. If the recomputed closing balance
// disagrees with the cached one the cache has drifted; the recomputed
// value wins and the drift is logged.
func (s *ledgerService) GetAccountSummary(ctx context.Context, employeeID string) (*domain.AccountSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.ledgerRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	txns, err := s.ledgerRepo.FindTransactionsByEmployeeID(ctx, employeeID)
	if err != nil {
		logger.Error("Failed to fetch transactions for summary", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, err
	}

	lines, totalBills, totalPayments, closing, err := accounting.BuildStatement(txns)
	if err != nil {
		return nil, err
	}

	if !closing.Equal(employee.ActiveBalance) {
		logger.Warn("Cached balance disagrees with recomputed statement",
			slog.String("employee_id", employeeID),
			slog.String("cached", employee.ActiveBalance.String()),
			slog.String("recomputed", closing.String()),
		)
	}

	return &domain.AccountSummary{
		Employee:       *employee,
		Lines:          lines,
		TotalBills:     totalBills,
		TotalPayments:  totalPayments,
		ClosingBalance: closing,
	}, nil
}
