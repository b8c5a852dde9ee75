package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/core/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
)

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBillsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Bill, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill, charge *domain.EmployeeTransaction) error {
	args := m.Called(ctx, bill, charge)
	return args.Error(0)
}

// --- Mock MenuRepository ---
type MockMenuRepository struct {
	mock.Mock
}

var _ portsrepo.MenuRepositoryFacade = (*MockMenuRepository)(nil)

func (m *MockMenuRepository) FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindMenuItemsByIDs(ctx context.Context, menuItemIDs []string) (map[string]domain.MenuItem, error) {
	args := m.Called(ctx, menuItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListMenuItems(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error) {
	args := m.Called(ctx, category, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	args := m.Called(ctx, menuItemID)
	return args.Error(0)
}

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, settings domain.AppSettings) (*domain.AppSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type BillingServiceTestSuite struct {
	suite.Suite
	mockBillRepo    *MockBillRepository
	mockMenuRepo    *MockMenuRepository
	mockCounterRepo *MockCounterRepository
	mockSettingsSvc *MockSettingsService
	mockUserSvc     *MockUserService
	service         portssvc.BillingSvcFacade

	cashier  domain.User
	dosa     domain.MenuItem
	tea      domain.MenuItem
	settings domain.AppSettings
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockMenuRepo = new(MockMenuRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewBillingService(suite.mockBillRepo, suite.mockMenuRepo, suite.mockCounterRepo, suite.mockSettingsSvc, suite.mockUserSvc)

	suite.cashier = domain.User{
		UserID:   uuid.NewString(),
		Username: "cashier1",
		Name:     "Priya",
		Role:     domain.RoleStaff,
		IsActive: true,
	}
	suite.dosa = domain.MenuItem{
		MenuItemID:  uuid.NewString(),
		Name:        "Masala Dosa",
		Price:       decimal.NewFromInt(40),
		Category:    "South Indian",
		IsAvailable: true,
	}
	suite.tea = domain.MenuItem{
		MenuItemID:  uuid.NewString(),
		Name:        "Tea",
		Price:       decimal.NewFromInt(20),
		Category:    "Beverages",
		IsAvailable: true,
	}
	suite.settings = domain.AppSettings{
		ShopName: "Tandoor Junction",
		CGSTRate: decimal.NewFromFloat(2.5),
		SGSTRate: decimal.NewFromFloat(2.5),
		Currency: "INR",
	}
}

func (suite *BillingServiceTestSuite) TestCreateBill_CashSettlement() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
	suite.mockMenuRepo.On("FindMenuItemsByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.MenuItem{
		suite.dosa.MenuItemID: suite.dosa,
		suite.tea.MenuItemID:  suite.tea,
	}, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(&suite.settings, nil).Once()
	suite.mockCounterRepo.On("NextValue", ctx, "bill_number").Return(int64(7), nil).Once()
	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill"), (*domain.EmployeeTransaction)(nil)).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:     domain.DineIn,
		PaymentMethod: domain.PayCash,
		Items: []dto.BillItemRequest{
			{MenuItemID: suite.dosa.MenuItemID, Quantity: 2},
			{MenuItemID: suite.tea.MenuItemID, Quantity: 1},
		},
	}, suite.cashier.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.Equal("07", bill.BillNumber)
	suite.True(bill.Subtotal.Equal(decimal.NewFromInt(100)))
	suite.True(bill.CGST.Equal(decimal.RequireFromString("2.50")))
	suite.True(bill.SGST.Equal(decimal.RequireFromString("2.50")))
	suite.True(bill.Total.Equal(decimal.NewFromInt(105)))
	suite.Require().Len(bill.Items, 2)
	suite.Equal("Masala Dosa", bill.Items[0].Name)
	suite.True(bill.Items[0].Subtotal.Equal(decimal.NewFromInt(80)))
	suite.Equal(suite.cashier.Name, bill.CreatedByName)
	suite.Nil(bill.ChargedEmployeeID)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreateBill_CompanyCharge() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
	suite.mockMenuRepo.On("FindMenuItemsByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.MenuItem{
		suite.dosa.MenuItemID: suite.dosa,
	}, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(&suite.settings, nil).Once()
	suite.mockCounterRepo.On("NextValue", ctx, "bill_number").Return(int64(42), nil).Once()
	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill"), mock.MatchedBy(func(charge *domain.EmployeeTransaction) bool {
		return charge != nil &&
			charge.EmployeeID == employeeID &&
			charge.Type == domain.TxnBill &&
			charge.Amount.Equal(decimal.NewFromInt(42)) &&
			charge.Description == "Bill #42"
	})).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:          domain.Parcel,
		ChargeToEmployeeID: &employeeID,
		Items: []dto.BillItemRequest{
			{MenuItemID: suite.dosa.MenuItemID, Quantity: 1},
		},
	}, suite.cashier.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	// 40 + 2.5% CGST (1.00) + 2.5% SGST (1.00)
	suite.True(bill.Total.Equal(decimal.NewFromInt(42)))
	suite.Require().NotNil(bill.ChargedEmployeeID)
	suite.Equal(employeeID, *bill.ChargedEmployeeID)
	suite.Empty(bill.PaymentMethod)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreateBill_BothSettlementPathsRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:          domain.DineIn,
		PaymentMethod:      domain.PayCash,
		ChargeToEmployeeID: &employeeID,
		Items:              []dto.BillItemRequest{{MenuItemID: suite.dosa.MenuItemID, Quantity: 1}},
	}, suite.cashier.UserID)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillingServiceTestSuite) TestCreateBill_NoSettlementPathRejected() {
	ctx := context.Background()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType: domain.DineIn,
		Items:     []dto.BillItemRequest{{MenuItemID: suite.dosa.MenuItemID, Quantity: 1}},
	}, suite.cashier.UserID)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCounterRepo.AssertNotCalled(suite.T(), "NextValue")
}

func (suite *BillingServiceTestSuite) TestCreateBill_UnknownMenuItem() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
	suite.mockMenuRepo.On("FindMenuItemsByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.MenuItem{}, nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:     domain.DineIn,
		PaymentMethod: domain.PayUPI,
		Items:         []dto.BillItemRequest{{MenuItemID: uuid.NewString(), Quantity: 1}},
	}, suite.cashier.UserID)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillingServiceTestSuite) TestCreateBill_UnavailableMenuItemRejected() {
	ctx := context.Background()
	offMenu := suite.dosa
	offMenu.IsAvailable = false

	suite.mockUserSvc.On("GetUserByID", ctx, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
	suite.mockMenuRepo.On("FindMenuItemsByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.MenuItem{
		offMenu.MenuItemID: offMenu,
	}, nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:     domain.DineIn,
		PaymentMethod: domain.PayCard,
		Items:         []dto.BillItemRequest{{MenuItemID: offMenu.MenuItemID, Quantity: 1}},
	}, suite.cashier.UserID)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill")
}

func (suite *BillingServiceTestSuite) TestCreateBill_TaxRoundsToTwoPlaces() {
	ctx := context.Background()
	samosa := domain.MenuItem{
		MenuItemID:  uuid.NewString(),
		Name:        "Samosa",
		Price:       decimal.RequireFromString("15.50"),
		IsAvailable: true,
	}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
	suite.mockMenuRepo.On("FindMenuItemsByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.MenuItem{
		samosa.MenuItemID: samosa,
	}, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx).Return(&suite.settings, nil).Once()
	suite.mockCounterRepo.On("NextValue", ctx, "bill_number").Return(int64(1), nil).Once()
	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill"), (*domain.EmployeeTransaction)(nil)).Return(nil).Once()

	bill, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		OrderType:     domain.Parcel,
		PaymentMethod: domain.PayCash,
		Items:         []dto.BillItemRequest{{MenuItemID: samosa.MenuItemID, Quantity: 3}},
	}, suite.cashier.UserID)

	suite.Require().NoError(err)
	// 46.50 * 2.5% = 1.1625, rounded to 1.16
	suite.True(bill.Subtotal.Equal(decimal.RequireFromString("46.50")))
	suite.True(bill.CGST.Equal(decimal.RequireFromString("1.16")))
	suite.True(bill.SGST.Equal(decimal.RequireFromString("1.16")))
	suite.True(bill.Total.Equal(decimal.RequireFromString("48.82")))
	suite.Equal("01", bill.BillNumber)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
