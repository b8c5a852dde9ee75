package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry increases or decreases
// the employee's debt.
type TransactionType string

const (
	TxnBill    TransactionType = "BILL"    // Increases activeBalance
	TxnPayment TransactionType = "PAYMENT" // Decreases activeBalance
)

// PaymentDetails carries optional metadata recorded when a payment is
// collected at the counter.
type PaymentDetails struct {
	Method    string `json:"method"`    // e.g. Cash, Card, UPI
	Collector string `json:"collector"` // Name of the person who collected
}

// EmployeeTransaction is an immutable, append-only ledger entry. Amount is
// always stored non-negative; the sign is implied by Type. Seq is a
// store-assigned monotonic sequence number and is the total order key for
// the ledger; CreatedAt is kept for display only.
type EmployeeTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	EmployeeID    string          `json:"employeeID"`    // FK -> employees.employee_id
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`            // Always >= 0
	Description   string          `json:"description"`       // Optional free text
	Payment       *PaymentDetails `json:"payment,omitempty"` // Set on PAYMENT entries when collected via UI
	Seq           int64           `json:"seq"`               // Monotonic per-store ordering key
	CreatedAt     time.Time       `json:"createdAt"`
}

// StatementLine is one row of a reconstructed ledger statement: the
// transaction plus the running balance after applying it.
type StatementLine struct {
	EmployeeTransaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountSummary is the read-side projection of an employee's ledger:
// the full chronological statement with running balances and totals.
// ClosingBalance must always equal the employee's stored ActiveBalance.
type AccountSummary struct {
	Employee       Employee        `json:"employee"`
	Lines          []StatementLine `json:"transactions"`
	TotalBills     decimal.Decimal `json:"totalBills"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
