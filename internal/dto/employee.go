package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// CreateEmployeeRequest is the payload for opening an employee credit account.
type CreateEmployeeRequest struct {
	CompanyID string `json:"companyID" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
}

// PaymentDetailsDTO is optional collection metadata on a payment.
type PaymentDetailsDTO struct {
	Method    string `json:"method"`
	Collector string `json:"collector"`
}

// AddTransactionRequest is the payload for appending a ledger entry.
// Amount is coerced to its absolute value server-side; the sign is
// implied by Type.
type AddTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=BILL PAYMENT"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Payment     *PaymentDetailsDTO     `json:"payment"`
}

// EmployeeResponse is the API representation of an employee account.
type EmployeeResponse struct {
	EmployeeID    string          `json:"employeeID"`
	EmployeeCode  string          `json:"employeeCode"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	ActiveBalance decimal.Decimal `json:"activeBalance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToEmployeeResponse converts a domain Employee to its API representation.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		EmployeeCode:  e.EmployeeCode,
		CompanyID:     e.CompanyID,
		Name:          e.Name,
		Phone:         e.Phone,
		ActiveBalance: e.ActiveBalance,
		CreatedAt:     e.CreatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain employees.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	EmployeeID    string                 `json:"employeeID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description,omitempty"`
	Payment       *PaymentDetailsDTO     `json:"payment,omitempty"`
	Seq           int64                  `json:"seq"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain ledger entry.
func ToTransactionResponse(t *domain.EmployeeTransaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		EmployeeID:    t.EmployeeID,
		Type:          t.Type,
		Amount:        t.Amount,
		Description:   t.Description,
		Seq:           t.Seq,
		CreatedAt:     t.CreatedAt,
	}
	if t.Payment != nil {
		resp.Payment = &PaymentDetailsDTO{Method: t.Payment.Method, Collector: t.Payment.Collector}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain ledger entries.
func ToTransactionResponses(txns []domain.EmployeeTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// StatementLineResponse is one statement row with its running balance.
type StatementLineResponse struct {
	TransactionResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountSummaryResponse is the reconstructed ledger statement.
type AccountSummaryResponse struct {
	Employee       EmployeeResponse        `json:"employee"`
	Transactions   []StatementLineResponse `json:"transactions"`
	TotalBills     decimal.Decimal         `json:"totalBills"`
	TotalPayments  decimal.Decimal         `json:"totalPayments"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
}

// ToAccountSummaryResponse converts a domain AccountSummary.
func ToAccountSummaryResponse(s *domain.AccountSummary) AccountSummaryResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i := range s.Lines {
		lines[i] = StatementLineResponse{
			TransactionResponse: ToTransactionResponse(&s.Lines[i].EmployeeTransaction),
			RunningBalance:      s.Lines[i].RunningBalance,
		}
	}
	return AccountSummaryResponse{
		Employee:       ToEmployeeResponse(&s.Employee),
		Transactions:   lines,
		TotalBills:     s.TotalBills,
		TotalPayments:  s.TotalPayments,
		ClosingBalance: s.ClosingBalance,
	}
}
