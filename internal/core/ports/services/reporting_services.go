package services

import (
	"context"
	"time"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// ReportingSvcFacade produces read-only sales reports.
type ReportingSvcFacade interface {
	GetDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error)
	GetCategorySales(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error)

	// ExportBillsCSV streams the bills in range as CSV rows (header included).
	ExportBillsCSV(ctx context.Context, from, to time.Time) ([][]string, error)
}

// SettingsSvcFacade reads and updates the shop settings.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
	UpdateSettings(ctx context.Context, settings domain.AppSettings) (*domain.AppSettings, error)
}
