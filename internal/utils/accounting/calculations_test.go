package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/utils/accounting"
)

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name     string
		txn      domain.EmployeeTransaction
		expected decimal.Decimal
		wantErr  bool
	}{
		{
			name:     "bill is positive",
			txn:      domain.EmployeeTransaction{Type: domain.TxnBill, Amount: decimal.NewFromInt(150)},
			expected: decimal.NewFromInt(150),
		},
		{
			name:     "payment is negative",
			txn:      domain.EmployeeTransaction{Type: domain.TxnPayment, Amount: decimal.NewFromInt(50)},
			expected: decimal.NewFromInt(-50),
		},
		{
			name:    "unknown type fails",
			txn:     domain.EmployeeTransaction{Type: "REFUND", Amount: decimal.NewFromInt(10)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := accounting.SignedAmount(tt.txn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, signed.Equal(tt.expected), "expected %s, got %s", tt.expected, signed)
		})
	}
}

func TestBuildStatement(t *testing.T) {
	txns := []domain.EmployeeTransaction{
		{TransactionID: "t1", Type: domain.TxnBill, Amount: decimal.NewFromInt(150), Seq: 1},
		{TransactionID: "t2", Type: domain.TxnPayment, Amount: decimal.NewFromInt(50), Seq: 2},
		{TransactionID: "t3", Type: domain.TxnBill, Amount: decimal.RequireFromString("25.50"), Seq: 3},
	}

	lines, totalBills, totalPayments, closing, err := accounting.BuildStatement(txns)

	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.True(t, lines[0].RunningBalance.Equal(decimal.NewFromInt(150)))
	assert.True(t, lines[1].RunningBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, lines[2].RunningBalance.Equal(decimal.RequireFromString("125.50")))
	assert.True(t, totalBills.Equal(decimal.RequireFromString("175.50")))
	assert.True(t, totalPayments.Equal(decimal.NewFromInt(50)))
	assert.True(t, closing.Equal(decimal.RequireFromString("125.50")))
}

func TestBuildStatement_Empty(t *testing.T) {
	lines, totalBills, totalPayments, closing, err := accounting.BuildStatement(nil)

	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, totalBills.IsZero())
	assert.True(t, totalPayments.IsZero())
	assert.True(t, closing.IsZero())
}

func TestBuildStatement_UnknownTypeFails(t *testing.T) {
	txns := []domain.EmployeeTransaction{
		{TransactionID: "t1", Type: "REFUND", Amount: decimal.NewFromInt(10), Seq: 1},
	}

	lines, _, _, _, err := accounting.BuildStatement(txns)

	assert.Error(t, err)
	assert.Nil(t, lines)
}
