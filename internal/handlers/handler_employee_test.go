package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/handlers"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockLedgerService) GetCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockLedgerService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockLedgerService) GetEmployeesByCompany(ctx context.Context, companyID string) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockLedgerService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockLedgerService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, employeeID string) ([]domain.EmployeeTransaction, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeTransaction), args.Error(1)
}
func (m *MockLedgerService) AddTransaction(ctx context.Context, employeeID string, req dto.AddTransactionRequest) (*domain.EmployeeTransaction, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeTransaction), args.Error(1)
}
func (m *MockLedgerService) GetAccountSummary(ctx context.Context, employeeID string) (*domain.AccountSummary, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type EmployeeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a signed session token for requests.
func (suite *EmployeeHandlerTestSuite) generateTestToken(userID, role string) string {
	claims := middleware.SessionClaims{
		Role: role,
		Name: "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pos-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEmployeeRoutes(v1, suite.mockLedgerService)
}

func (suite *EmployeeHandlerTestSuite) TestGetAccountSummary_Success() {
	employeeID := uuid.NewString()
	employee := domain.Employee{
		EmployeeID:    employeeID,
		EmployeeCode:  "EMP-00007",
		CompanyID:     uuid.NewString(),
		Name:          "Ravi",
		ActiveBalance: decimal.NewFromInt(100),
	}
	summary := &domain.AccountSummary{
		Employee: employee,
		Lines: []domain.StatementLine{
			{
				EmployeeTransaction: domain.EmployeeTransaction{
					TransactionID: uuid.NewString(),
					EmployeeID:    employeeID,
					Type:          domain.TxnBill,
					Amount:        decimal.NewFromInt(150),
					Seq:           1,
				},
				RunningBalance: decimal.NewFromInt(150),
			},
			{
				EmployeeTransaction: domain.EmployeeTransaction{
					TransactionID: uuid.NewString(),
					EmployeeID:    employeeID,
					Type:          domain.TxnPayment,
					Amount:        decimal.NewFromInt(50),
					Seq:           2,
				},
				RunningBalance: decimal.NewFromInt(100),
			},
		},
		TotalBills:     decimal.NewFromInt(150),
		TotalPayments:  decimal.NewFromInt(50),
		ClosingBalance: decimal.NewFromInt(100),
	}

	suite.mockLedgerService.On("GetAccountSummary", mock.AnythingOfType("*context.valueCtx"), employeeID).Return(summary, nil).Once()

	url := fmt.Sprintf("/api/v1/employees/%s/summary", employeeID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "STAFF"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AccountSummaryResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal("EMP-00007", body.Employee.EmployeeCode)
	suite.Require().Len(body.Transactions, 2)
	suite.True(body.Transactions[0].RunningBalance.Equal(decimal.NewFromInt(150)))
	suite.True(body.Transactions[1].RunningBalance.Equal(decimal.NewFromInt(100)))
	suite.True(body.ClosingBalance.Equal(decimal.NewFromInt(100)))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestGetAccountSummary_UnknownEmployeeIs404() {
	employeeID := uuid.NewString()

	suite.mockLedgerService.On("GetAccountSummary", mock.AnythingOfType("*context.valueCtx"), employeeID).Return(nil, nil).Once()

	url := fmt.Sprintf("/api/v1/employees/%s/summary", employeeID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "STAFF"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestAddTransaction_Success() {
	employeeID := uuid.NewString()
	stored := &domain.EmployeeTransaction{
		TransactionID: uuid.NewString(),
		EmployeeID:    employeeID,
		Type:          domain.TxnPayment,
		Amount:        decimal.NewFromInt(50),
		Seq:           9,
		CreatedAt:     time.Now().UTC(),
	}

	suite.mockLedgerService.On("AddTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		employeeID,
		mock.MatchedBy(func(req dto.AddTransactionRequest) bool {
			return req.Type == domain.TxnPayment && req.Amount.Equal(decimal.NewFromInt(50))
		}),
	).Return(stored, nil).Once()

	payload, _ := json.Marshal(dto.AddTransactionRequest{
		Type:   domain.TxnPayment,
		Amount: decimal.NewFromInt(50),
	})
	url := fmt.Sprintf("/api/v1/employees/%s/transactions", employeeID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "STAFF"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal(stored.TransactionID, body.TransactionID)
	suite.Equal(int64(9), body.Seq)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestAddTransaction_InvalidTypeRejectedByBinding() {
	employeeID := uuid.NewString()

	payload := []byte(`{"type":"REFUND","amount":"50"}`)
	url := fmt.Sprintf("/api/v1/employees/%s/transactions", employeeID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "STAFF"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddTransaction")
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFoundMapsTo404() {
	employeeID := uuid.NewString()

	suite.mockLedgerService.On("GetEmployeeByID", mock.AnythingOfType("*context.valueCtx"), employeeID).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/employees/%s", employeeID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "STAFF"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestMissingTokenIs401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees/"+uuid.NewString(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetEmployeeByID")
}

// --- Run Test Suite ---
func TestEmployeeHandler(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
