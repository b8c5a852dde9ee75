package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newCompanyHandler(ls portssvc.LedgerSvcFacade) *companyHandler {
	return &companyHandler{ledgerService: ls}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newCompanyHandler(ledgerService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompany)
		companies.GET("/:id/employees", h.listCompanyEmployees)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Description Creates a company to hold employee credit accounts
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.ledgerService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create company")
		return
	}

	logger.Info("Company created successfully", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List all companies
// @Tags companies
// @Produce  json
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.ledgerService.GetCompanies(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponses(companies))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce  json
// @Param   id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to retrieve company"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	company, err := h.ledgerService.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanyEmployees godoc
// @Summary List the employees of a company
// @Tags companies
// @Produce  json
// @Param   id path string true "Company ID"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Security BearerAuth
// @Router /companies/{id}/employees [get]
func (h *companyHandler) listCompanyEmployees(c *gin.Context) {
	employees, err := h.ledgerService.GetEmployeesByCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}
