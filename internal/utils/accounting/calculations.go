package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// SignedAmount applies the sign implied by the transaction type.
// BILL increases the employee's debt, PAYMENT decreases it. Amounts are
// stored non-negative, so the sign lives entirely in this rule; it is
// shared by the service and the repository so the cached balance and the
// recomputed statement can never disagree on convention.
func SignedAmount(txn domain.EmployeeTransaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.TxnBill:
		return txn.Amount, nil
	case domain.TxnPayment:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction %s", txn.Type, txn.TransactionID)
	}
}

// BuildStatement performs the left-to-right fold over an ordered ledger:
// per-line running balance accumulated from zero, plus bill and payment
// totals. The final running balance is the closing balance.
func BuildStatement(txns []domain.EmployeeTransaction) (lines []domain.StatementLine, totalBills, totalPayments, closing decimal.Decimal, err error) {
	running := decimal.Zero
	totalBills = decimal.Zero
	totalPayments = decimal.Zero
	lines = make([]domain.StatementLine, 0, len(txns))

	for _, txn := range txns {
		signed, serr := SignedAmount(txn)
		if serr != nil {
			return nil, decimal.Zero, decimal.Zero, decimal.Zero, serr
		}
		running = running.Add(signed)
		if txn.Type == domain.TxnBill {
			totalBills = totalBills.Add(txn.Amount)
		} else {
			totalPayments = totalPayments.Add(txn.Amount)
		}
		lines = append(lines, domain.StatementLine{EmployeeTransaction: txn, RunningBalance: running})
	}
	return lines, totalBills, totalPayments, running, nil
}
