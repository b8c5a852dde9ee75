package repositories

import (
	"context"
	"time"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// ReportingRepositoryFacade runs read-only sales aggregations.
type ReportingRepositoryFacade interface {
	// GetDailySummaries aggregates bills per calendar day over [from, to).
	GetDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error)

	// GetCategorySales aggregates bill items per menu category over [from, to).
	GetCategorySales(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error)
}
