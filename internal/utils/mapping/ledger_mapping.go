package mapping

import (
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		EmployeeCode:  d.EmployeeCode,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Phone:         d.Phone,
		ActiveBalance: d.ActiveBalance,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:    m.EmployeeID,
		EmployeeCode:  m.EmployeeCode,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		Phone:         m.Phone,
		ActiveBalance: m.ActiveBalance,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelTransaction converts a domain ledger entry to its model form,
// flattening the optional payment metadata into nullable columns.
func ToModelTransaction(d domain.EmployeeTransaction) models.EmployeeTransaction {
	m := models.EmployeeTransaction{
		TransactionID: d.TransactionID,
		EmployeeID:    d.EmployeeID,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Seq:           d.Seq,
		CreatedAt:     d.CreatedAt,
	}
	if d.Payment != nil {
		method := d.Payment.Method
		collector := d.Payment.Collector
		m.PaymentMethod = &method
		m.CollectorName = &collector
	}
	return m
}

// ToDomainTransaction converts a model ledger entry to its domain form.
func ToDomainTransaction(m models.EmployeeTransaction) domain.EmployeeTransaction {
	d := domain.EmployeeTransaction{
		TransactionID: m.TransactionID,
		EmployeeID:    m.EmployeeID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Seq:           m.Seq,
		CreatedAt:     m.CreatedAt,
	}
	if m.PaymentMethod != nil || m.CollectorName != nil {
		p := domain.PaymentDetails{}
		if m.PaymentMethod != nil {
			p.Method = *m.PaymentMethod
		}
		if m.CollectorName != nil {
			p.Collector = *m.CollectorName
		}
		d.Payment = &p
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model ledger entries.
func ToDomainTransactionSlice(ms []models.EmployeeTransaction) []domain.EmployeeTransaction {
	out := make([]domain.EmployeeTransaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
