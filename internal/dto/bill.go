package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// BillItemRequest is one requested line on a new bill. Quantity must be
// positive; name and price are snapshotted from the menu server-side.
type BillItemRequest struct {
	MenuItemID string `json:"menuItemID" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// CreateBillRequest is the payload for finalizing a sale. Exactly one of
// PaymentMethod or ChargeToEmployeeID should be set: immediate settlement
// versus charging a company credit account.
type CreateBillRequest struct {
	OrderType          domain.OrderType     `json:"orderType" binding:"required,oneof=DINE_IN PARCEL"`
	PaymentMethod      domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD UPI"`
	ChargeToEmployeeID *string              `json:"chargeToEmployeeID"`
	CustomerName       string               `json:"customerName"`
	CustomerPhone      string               `json:"customerPhone"`
	Notes              string               `json:"notes"`
	Items              []BillItemRequest    `json:"items" binding:"required,min=1,dive"`
}

// BillItemResponse is one line of a stored bill.
type BillItemResponse struct {
	MenuItemID string          `json:"menuItemID"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// BillResponse is the API representation of a bill.
type BillResponse struct {
	BillID            string               `json:"billID"`
	BillNumber        string               `json:"billNumber"`
	OrderType         domain.OrderType     `json:"orderType"`
	PaymentMethod     domain.PaymentMethod `json:"paymentMethod,omitempty"`
	ChargedEmployeeID *string              `json:"chargedEmployeeID,omitempty"`
	CustomerName      string               `json:"customerName,omitempty"`
	CustomerPhone     string               `json:"customerPhone,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	CGST              decimal.Decimal      `json:"cgst"`
	SGST              decimal.Decimal      `json:"sgst"`
	Total             decimal.Decimal      `json:"total"`
	Items             []BillItemResponse   `json:"items"`
	CreatedBy         string               `json:"createdBy"`
	CreatedByName     string               `json:"createdByName"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// ToBillResponse converts a domain Bill.
func ToBillResponse(b *domain.Bill) BillResponse {
	items := make([]BillItemResponse, len(b.Items))
	for i, it := range b.Items {
		items[i] = BillItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Subtotal:   it.Subtotal,
		}
	}
	return BillResponse{
		BillID:            b.BillID,
		BillNumber:        b.BillNumber,
		OrderType:         b.OrderType,
		PaymentMethod:     b.PaymentMethod,
		ChargedEmployeeID: b.ChargedEmployeeID,
		CustomerName:      b.CustomerName,
		CustomerPhone:     b.CustomerPhone,
		Notes:             b.Notes,
		Subtotal:          b.Subtotal,
		CGST:              b.CGST,
		SGST:              b.SGST,
		Total:             b.Total,
		Items:             items,
		CreatedBy:         b.CreatedBy,
		CreatedByName:     b.CreatedByName,
		CreatedAt:         b.CreatedAt,
	}
}

// ToBillResponses converts a slice of domain bills.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	out := make([]BillResponse, len(bills))
	for i := range bills {
		out[i] = ToBillResponse(&bills[i])
	}
	return out
}
