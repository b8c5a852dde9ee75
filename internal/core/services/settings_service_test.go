package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/core/services"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsRepository) PutSettings(ctx context.Context, settings domain.AppSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Stored() {
	ctx := context.Background()
	stored := domain.AppSettings{
		ShopName:      "Tandoor Junction",
		CGSTRate:      decimal.NewFromFloat(9),
		SGSTRate:      decimal.NewFromFloat(9),
		PrinterFormat: domain.Printer58mm,
		Currency:      "INR",
	}
	suite.mockSettingsRepo.On("GetSettings", ctx).Return(&stored, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal("Tandoor Junction", settings.ShopName)
	suite.Equal(domain.Printer58mm, settings.PrinterFormat)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_FallsBackToDefaults() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(settings)
	suite.Equal(domain.Printer80mm, settings.PrinterFormat)
	suite.True(settings.CGSTRate.Equal(decimal.NewFromFloat(2.5)))
	suite.True(settings.SGSTRate.Equal(decimal.NewFromFloat(2.5)))
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings() {
	ctx := context.Background()
	updated := domain.AppSettings{ShopName: "New Name", PrinterFormat: domain.Printer80mm, Currency: "INR"}
	suite.mockSettingsRepo.On("PutSettings", ctx, updated).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, updated)

	suite.Require().NoError(err)
	suite.Equal("New Name", settings.ShopName)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
