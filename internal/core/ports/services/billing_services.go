package services

import (
	"context"
	"time"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/dto"
)

// BillingReaderSvc defines read operations for bills.
type BillingReaderSvc interface {
	// GetBillByID retrieves a bill with its items.
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves bills created within [from, to).
	ListBills(ctx context.Context, from, to time.Time) ([]domain.Bill, error)
}

// BillingWriterSvc defines write operations for bills.
type BillingWriterSvc interface {
	// CreateBill validates the requested items against the menu, computes
	// totals from the current tax settings, allocates the next bill number
	// and persists the bill. A bill charged to an employee credit account
	// commits together with its ledger entry.
	CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error)
}

// BillingSvcFacade combines all billing service interfaces.
type BillingSvcFacade interface {
	BillingReaderSvc
	BillingWriterSvc
}
