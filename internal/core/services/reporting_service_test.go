package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetDailySummaries(ctx context.Context, from, to time.Time) ([]domain.DailySummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}

func (m *MockReportingRepository) GetCategorySales(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySales), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockBillRepo      *MockBillRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockBillRepo)
}

func (suite *ReportingServiceTestSuite) TestExportBillsCSV_RowShape() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	employeeID := uuid.NewString()

	bills := []domain.Bill{
		{
			BillID:        uuid.NewString(),
			BillNumber:    "07",
			OrderType:     domain.DineIn,
			PaymentMethod: domain.PayCash,
			CustomerName:  "Walk-in",
			Subtotal:      decimal.NewFromInt(100),
			CGST:          decimal.RequireFromString("2.50"),
			SGST:          decimal.RequireFromString("2.50"),
			Total:         decimal.NewFromInt(105),
			Items: []domain.BillItem{
				{Name: "Masala Dosa", Quantity: 2, Price: decimal.NewFromInt(40), Subtotal: decimal.NewFromInt(80)},
				{Name: "Tea", Quantity: 1, Price: decimal.NewFromInt(20), Subtotal: decimal.NewFromInt(20)},
			},
			CreatedByName: "Priya",
			CreatedAt:     time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			BillID:            uuid.NewString(),
			BillNumber:        "08",
			OrderType:         domain.Parcel,
			ChargedEmployeeID: &employeeID,
			Subtotal:          decimal.NewFromInt(40),
			CGST:              decimal.NewFromInt(1),
			SGST:              decimal.NewFromInt(1),
			Total:             decimal.NewFromInt(42),
			Items: []domain.BillItem{
				{Name: "Masala Dosa", Quantity: 1, Price: decimal.NewFromInt(40), Subtotal: decimal.NewFromInt(40)},
			},
			CreatedByName: "Priya",
			CreatedAt:     time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
		},
	}

	suite.mockBillRepo.On("ListBillsByDateRange", ctx, from, to).Return(bills, nil).Once()

	rows, err := suite.service.ExportBillsCSV(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal([]string{
		"Bill Number", "Date", "Cashier", "Customer", "Items",
		"Subtotal", "CGST", "SGST", "Total", "Payment",
	}, rows[0])
	suite.Equal([]string{
		"07", "2025-03-01 12:30:45", "Priya", "Walk-in",
		"2x Masala Dosa; 1x Tea",
		"100.00", "2.50", "2.50", "105.00", "CASH",
	}, rows[1])
	// A charged bill shows COMPANY regardless of the empty payment method
	suite.Equal("COMPANY", rows[2][9])
	suite.Equal("1x Masala Dosa", rows[2][4])
}

func (suite *ReportingServiceTestSuite) TestExportBillsCSV_EmptyRangeStillHasHeader() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	suite.mockBillRepo.On("ListBillsByDateRange", ctx, from, to).Return([]domain.Bill{}, nil).Once()

	rows, err := suite.service.ExportBillsCSV(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Bill Number", rows[0][0])
}

func (suite *ReportingServiceTestSuite) TestGetDailySummaries_PassThrough() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	summaries := []domain.DailySummary{
		{Date: "2025-03-01", TotalSales: decimal.NewFromInt(1050), TotalBills: 10, TotalItems: 25, AvgBillValue: decimal.NewFromInt(105)},
	}

	suite.mockReportingRepo.On("GetDailySummaries", ctx, from, to).Return(summaries, nil).Once()

	got, err := suite.service.GetDailySummaries(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(summaries, got)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
