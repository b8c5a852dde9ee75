package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the database representation of an employee credit account.
type Employee struct {
	EmployeeID    string          `db:"employee_id"`
	EmployeeCode  string          `db:"employee_code"`
	CompanyID     string          `db:"company_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	ActiveBalance decimal.Decimal `db:"active_balance"`
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	TxnBill    TransactionType = "BILL"
	TxnPayment TransactionType = "PAYMENT"
)

// EmployeeTransaction is the database representation of a ledger entry.
// PaymentMethod and CollectorName are nullable columns holding the typed
// payment metadata.
type EmployeeTransaction struct {
	TransactionID string          `db:"transaction_id"`
	EmployeeID    string          `db:"employee_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	PaymentMethod *string         `db:"payment_method"`
	CollectorName *string         `db:"collector_name"`
	Seq           int64           `db:"seq"`
	CreatedAt     time.Time       `db:"created_at"`
}
