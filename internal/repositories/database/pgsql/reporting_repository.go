package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// dailySummariesQuery aggregates bills per calendar day. Items are
// pre-aggregated per bill in a subquery so each bill contributes exactly
// one row; joining bill_items directly would repeat a bill's total once
// per item and inflate the sales sum.
const dailySummariesQuery = `
	SELECT to_char(b.created_at::date, 'YYYY-MM-DD') AS day,
	       COALESCE(SUM(b.total), 0) AS total_sales,
	       COUNT(*) AS total_bills,
	       COALESCE(SUM(i.item_count), 0) AS total_items
	FROM bills b
	LEFT JOIN (
		SELECT bill_id, SUM(quantity) AS item_count
		FROM bill_items
		GROUP BY bill_id
	) i ON i.bill_id = b.bill_id
	WHERE b.created_at >= $1 AND b.created_at < $2
	GROUP BY b.created_at::date
	ORDER BY b.created_at::date;
`

// GetDailySummaries aggregates bills per calendar day over [from, to).
func (r *PgxReportingRepository) GetDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	rows, err := r.Pool.Query(ctx, dailySummariesQuery, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query daily summaries", err)
	}
	defer rows.Close()

	summaries := []domain.DailySummary{}
	for rows.Next() {
		var s domain.DailySummary
		if err := rows.Scan(&s.Date, &s.TotalSales, &s.TotalBills, &s.TotalItems); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily summary row", err)
		}
		s.AvgBillValue = AvgBillValue(s.TotalSales, s.TotalBills)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating daily summary rows", err)
	}
	return summaries, nil
}

// AvgBillValue derives the average bill value for a summary row, rounded
// to two places. A day with no bills averages to zero.
func AvgBillValue(totalSales decimal.Decimal, totalBills int64) decimal.Decimal {
	if totalBills <= 0 {
		return decimal.Zero
	}
	return totalSales.DivRound(decimal.NewFromInt(totalBills), 2)
}

// GetCategorySales aggregates bill items per menu category over [from, to).
func (r *PgxReportingRepository) GetCategorySales(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error) {
	query := `
		SELECT COALESCE(m.category, 'Uncategorized') AS category,
		       COALESCE(SUM(i.subtotal), 0) AS total_sales,
		       COALESCE(SUM(i.quantity), 0) AS item_count
		FROM bill_items i
		JOIN bills b ON b.bill_id = i.bill_id
		LEFT JOIN menu_items m ON m.menu_item_id = i.menu_item_id
		WHERE b.created_at >= $1 AND b.created_at < $2
		GROUP BY COALESCE(m.category, 'Uncategorized')
		ORDER BY total_sales DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category sales", err)
	}
	defer rows.Close()

	sales := []domain.CategorySales{}
	for rows.Next() {
		var s domain.CategorySales
		if err := rows.Scan(&s.Category, &s.TotalSales, &s.ItemCount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category sales row", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category sales rows", err)
	}
	return sales, nil
}
