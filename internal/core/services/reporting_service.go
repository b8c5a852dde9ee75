package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// reportingService produces read-only sales reports and exports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	billRepo      portsrepo.BillRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, billRepo portsrepo.BillRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		billRepo:      billRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDailySummaries aggregates bills per calendar day over [from, to).
func (s *reportingService) GetDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	return s.reportingRepo.GetDailySummaries(ctx, from, to)
}

// GetCategorySales aggregates bill items per menu category over [from, to).
func (s *reportingService) GetCategorySales(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error) {
	return s.reportingRepo.GetCategorySales(ctx, from, to)
}

// ExportBillsCSV renders the bills in range as CSV rows, header first.
// Items are flattened into one cell as "2x Dosa; 1x Tea". Bills charged
// to a company account show COMPANY in the payment column.
func (s *reportingService) ExportBillsCSV(ctx context.Context, from, to time.Time) ([][]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bills, err := s.billRepo.ListBillsByDateRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to fetch bills for export", slog.String("error", err.Error()))
		return nil, err
	}

	rows := make([][]string, 0, len(bills)+1)
	rows = append(rows, []string{
		"Bill Number", "Date", "Cashier", "Customer", "Items",
		"Subtotal", "CGST", "SGST", "Total", "Payment",
	})

	for _, bill := range bills {
		itemParts := make([]string, len(bill.Items))
		for i, item := range bill.Items {
			itemParts[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		}

		payment := string(bill.PaymentMethod)
		if bill.ChargedEmployeeID != nil {
			payment = "COMPANY"
		}

		rows = append(rows, []string{
			bill.BillNumber,
			bill.CreatedAt.Format("2006-01-02 15:04:05"),
			bill.CreatedByName,
			bill.CustomerName,
			strings.Join(itemParts, "; "),
			bill.Subtotal.StringFixed(2),
			bill.CGST.StringFixed(2),
			bill.SGST.StringFixed(2),
			bill.Total.StringFixed(2),
			payment,
		})
	}

	logger.Info("Bills exported", slog.Int("count", len(bills)))
	return rows, nil
}
