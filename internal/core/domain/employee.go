package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a debtor account scoped to one company.
//
// ActiveBalance is a cached projection of the transaction log: it must
// equal the sum of BILL amounts minus the sum of PAYMENT amounts for this
// employee after every committed operation. Only the ledger engine's
// AddTransaction mutates it.
type Employee struct {
	EmployeeID    string          `json:"employeeID"`   // Primary key (UUID)
	EmployeeCode  string          `json:"employeeCode"` // Human-facing code, e.g. EMP-00001; globally unique
	CompanyID     string          `json:"companyID"`    // FK -> companies.company_id
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`         // Optional
	ActiveBalance decimal.Decimal `json:"activeBalance"` // Positive means the employee owes money
	CreatedAt     time.Time       `json:"createdAt"`
}
