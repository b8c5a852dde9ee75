package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// employeeHandler handles HTTP requests for employee credit accounts and
// their ledgers.
type employeeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newEmployeeHandler(ls portssvc.LedgerSvcFacade) *employeeHandler {
	return &employeeHandler{ledgerService: ls}
}

// RegisterEmployeeRoutes registers routes related to employee accounts.
func RegisterEmployeeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newEmployeeHandler(ledgerService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("/:id", h.getEmployee)
		employees.GET("/:id/transactions", h.listTransactions)
		employees.POST("/:id/transactions", h.addTransaction)
		employees.GET("/:id/summary", h.getAccountSummary)
	}
}

// createEmployee godoc
// @Summary Open an employee credit account
// @Description Creates an employee under a company with a zero balance and a freshly allocated code
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.ledgerService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", employee.EmployeeID), slog.String("employee_code", employee.EmployeeCode))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employee, err := h.ledgerService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listTransactions godoc
// @Summary List an employee's ledger entries
// @Description Returns the append-only transaction log in chronological order
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /employees/{id}/transactions [get]
func (h *employeeHandler) listTransactions(c *gin.Context) {
	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// addTransaction godoc
// @Summary Append a ledger entry
// @Description Appends a BILL or PAYMENT entry and updates the employee's balance atomically
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   transaction body dto.AddTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to add transaction"
// @Security BearerAuth
// @Router /employees/{id}/transactions [post]
func (h *employeeHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add transaction")
		return
	}

	logger.Info("Transaction added successfully", slog.String("transaction_id", txn.TransactionID), slog.Int64("seq", txn.Seq))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getAccountSummary godoc
// @Summary Get an employee's account summary
// @Description Returns the full statement with running balances, totals and closing balance
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to build account summary"
// @Security BearerAuth
// @Router /employees/{id}/summary [get]
func (h *employeeHandler) getAccountSummary(c *gin.Context) {
	summary, err := h.ledgerService.GetAccountSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to build account summary")
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(summary))
}
