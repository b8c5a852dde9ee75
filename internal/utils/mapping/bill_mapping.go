package mapping

import (
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/models"
)

// ToModelBill converts a domain Bill header to its model form.
func ToModelBill(d domain.Bill) models.Bill {
	m := models.Bill{
		BillID:            d.BillID,
		BillNumber:        d.BillNumber,
		OrderType:         string(d.OrderType),
		ChargedEmployeeID: d.ChargedEmployeeID,
		CustomerName:      d.CustomerName,
		CustomerPhone:     d.CustomerPhone,
		Notes:             d.Notes,
		Subtotal:          d.Subtotal,
		CGST:              d.CGST,
		SGST:              d.SGST,
		Total:             d.Total,
		CreatedBy:         d.CreatedBy,
		CreatedByName:     d.CreatedByName,
		CreatedAt:         d.CreatedAt,
	}
	if d.PaymentMethod != "" {
		method := string(d.PaymentMethod)
		m.PaymentMethod = &method
	}
	return m
}

// ToDomainBill converts a model Bill header plus its item rows.
func ToDomainBill(m models.Bill, items []models.BillItem) domain.Bill {
	d := domain.Bill{
		BillID:            m.BillID,
		BillNumber:        m.BillNumber,
		OrderType:         domain.OrderType(m.OrderType),
		ChargedEmployeeID: m.ChargedEmployeeID,
		CustomerName:      m.CustomerName,
		CustomerPhone:     m.CustomerPhone,
		Notes:             m.Notes,
		Subtotal:          m.Subtotal,
		CGST:              m.CGST,
		SGST:              m.SGST,
		Total:             m.Total,
		CreatedBy:         m.CreatedBy,
		CreatedByName:     m.CreatedByName,
		CreatedAt:         m.CreatedAt,
		Items:             make([]domain.BillItem, len(items)),
	}
	if m.PaymentMethod != nil {
		d.PaymentMethod = domain.PaymentMethod(*m.PaymentMethod)
	}
	for i, it := range items {
		d.Items[i] = domain.BillItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Subtotal:   it.Subtotal,
		}
	}
	return d
}
