package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// billNumberCounter is the meta counter that backs bill numbering.
const billNumberCounter = "bill_number"

// billingService finalizes sales: menu validation, tax calculation, bill
// numbering, and company charges routed through the ledger.
type billingService struct {
	billRepo    portsrepo.BillRepositoryFacade
	menuRepo    portsrepo.MenuRepositoryFacade
	counterRepo portsrepo.CounterRepository
	settingsSvc portssvc.SettingsSvcFacade
	userSvc     portssvc.UserSvcFacade
}

// NewBillingService creates a new billing service.
func NewBillingService(billRepo portsrepo.BillRepositoryFacade, menuRepo portsrepo.MenuRepositoryFacade, counterRepo portsrepo.CounterRepository, settingsSvc portssvc.SettingsSvcFacade, userSvc portssvc.UserSvcFacade) portssvc.BillingSvcFacade {
	return &billingService{
		billRepo:    billRepo,
		menuRepo:    menuRepo,
		counterRepo: counterRepo,
		settingsSvc: settingsSvc,
		userSvc:     userSvc,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// CreateBill validates the requested items against the menu, computes
// totals from the current tax settings, allocates the next bill number
// and persists the bill. Exactly one settlement path must be chosen:
// an immediate payment method, or a charge to an employee credit account.
// A charged bill commits in the same database transaction as its ledger
// entry, so the two can never diverge.
func (s *billingService) CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	charged := req.ChargeToEmployeeID != nil && *req.ChargeToEmployeeID != ""
	if charged == (req.PaymentMethod != "") {
		return nil, fmt.Errorf("%w: exactly one of paymentMethod or chargeToEmployeeID must be set", apperrors.ErrValidation)
	}

	creator, err := s.userSvc.GetUserByID(ctx, creatorUserID)
	if err != nil {
		logger.Error("Failed to resolve bill creator", slog.String("error", err.Error()), slog.String("user_id", creatorUserID))
		return nil, err
	}

	menuItemIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		menuItemIDs[i] = item.MenuItemID
	}
	menuItems, err := s.menuRepo.FindMenuItemsByIDs(ctx, menuItemIDs)
	if err != nil {
		logger.Error("Failed to fetch menu items for bill", slog.String("error", err.Error()))
		return nil, err
	}

	// Snapshot names and prices at billing time so later menu edits do
	// not rewrite history.
	subtotal := decimal.Zero
	items := make([]domain.BillItem, len(req.Items))
	for i, reqItem := range req.Items {
		menuItem, found := menuItems[reqItem.MenuItemID]
		if !found {
			return nil, fmt.Errorf("%w: menu item %s", apperrors.ErrNotFound, reqItem.MenuItemID)
		}
		if !menuItem.IsAvailable {
			return nil, fmt.Errorf("%w: menu item %s is not available", apperrors.ErrValidation, menuItem.Name)
		}
		lineSubtotal := menuItem.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity)))
		items[i] = domain.BillItem{
			MenuItemID: menuItem.MenuItemID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   reqItem.Quantity,
			Subtotal:   lineSubtotal,
		}
		subtotal = subtotal.Add(lineSubtotal)
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		logger.Error("Failed to load settings for bill", slog.String("error", err.Error()))
		return nil, err
	}
	hundred := decimal.NewFromInt(100)
	cgst := subtotal.Mul(settings.CGSTRate).DivRound(hundred, 2)
	sgst := subtotal.Mul(settings.SGSTRate).DivRound(hundred, 2)
	total := subtotal.Add(cgst).Add(sgst)

	next, err := s.counterRepo.NextValue(ctx, billNumberCounter)
	if err != nil {
		logger.Error("Failed to allocate bill number", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:        uuid.NewString(),
		BillNumber:    fmt.Sprintf("%02d", next),
		OrderType:     req.OrderType,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         strings.TrimSpace(req.Notes),
		Subtotal:      subtotal,
		CGST:          cgst,
		SGST:          sgst,
		Total:         total,
		Items:         items,
		CreatedBy:     creator.UserID,
		CreatedByName: creator.Name,
		CreatedAt:     now,
	}

	var charge *domain.EmployeeTransaction
	if charged {
		bill.ChargedEmployeeID = req.ChargeToEmployeeID
		charge = &domain.EmployeeTransaction{
			TransactionID: uuid.NewString(),
			EmployeeID:    *req.ChargeToEmployeeID,
			Type:          domain.TxnBill,
			Amount:        total,
			Description:   "Bill #" + bill.BillNumber,
			CreatedAt:     now,
		}
	}

	if err := s.billRepo.SaveBill(ctx, bill, charge); err != nil {
		logger.Error("Failed to save bill", slog.String("error", err.Error()), slog.String("bill_number", bill.BillNumber))
		return nil, err
	}

	logger.Info("Bill created",
		slog.String("bill_id", bill.BillID),
		slog.String("bill_number", bill.BillNumber),
		slog.String("total", total.String()),
		slog.Bool("charged", charged),
	)
	return &bill, nil
}

// GetBillByID retrieves a bill with its items.
func (s *billingService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

// ListBills retrieves bills created within [from, to).
func (s *billingService) ListBills(ctx context.Context, from, to time.Time) ([]domain.Bill, error) {
	return s.billRepo.ListBillsByDateRange(ctx, from, to)
}
