package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
	"github.com/tandoorlabs/pos-backend/internal/utils/receipt"
)

// billHandler handles HTTP requests for bills and receipts.
type billHandler struct {
	billingService  portssvc.BillingSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func newBillHandler(bs portssvc.BillingSvcFacade, ss portssvc.SettingsSvcFacade) *billHandler {
	return &billHandler{billingService: bs, settingsService: ss}
}

// registerBillRoutes registers routes related to billing.
func registerBillRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := newBillHandler(billingService, settingsService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.GET("/:id/receipt", h.getReceipt)
		bills.GET("/:id/qr", h.getReceiptQR)
	}
}

// parseDateRange reads the from/to query parameters as YYYY-MM-DD dates
// and returns the half-open UTC range [from, to+1d). Both default to
// today when omitted.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	from := today
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", s)
		}
		from = parsed
	}

	to := today
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", s)
		}
		to = parsed
	}

	return from, to.Add(24 * time.Hour), nil
}

// createBill godoc
// @Summary Finalize a sale
// @Description Creates a bill from menu items; settle immediately or charge an employee credit account
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Menu item or employee not found"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create bill")
		return
	}

	logger.Info("Bill created successfully", slog.String("bill_id", bill.BillID), slog.String("bill_number", bill.BillNumber))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills in a date range
// @Tags bills
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param   to query string false "End date inclusive (YYYY-MM-DD), defaults to today"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bills, err := h.billingService.ListBills(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponses(bills))
}

// getBill godoc
// @Summary Get a bill by ID
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billingService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// getReceipt godoc
// @Summary Render a bill's printable receipt
// @Description Returns receipt HTML sized for the configured thermal printer width
// @Tags bills
// @Produce  html
// @Param   id path string true "Bill ID"
// @Success 200 {string} string "Receipt HTML"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to render receipt"
// @Security BearerAuth
// @Router /bills/{id}/receipt [get]
func (h *billHandler) getReceipt(c *gin.Context) {
	bill, err := h.billingService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bill")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to load settings")
		return
	}

	html, err := receipt.Render(bill, settings)
	if err != nil {
		respondWithError(c, err, "Failed to render receipt")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// getReceiptQR godoc
// @Summary Get a bill's QR code
// @Description Returns a PNG QR code encoding the bill reference for receipt footers
// @Tags bills
// @Produce  png
// @Param   id path string true "Bill ID"
// @Success 200 {string} binary "QR code PNG"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to generate QR code"
// @Security BearerAuth
// @Router /bills/{id}/qr [get]
func (h *billHandler) getReceiptQR(c *gin.Context) {
	bill, err := h.billingService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bill")
		return
	}

	content := fmt.Sprintf("BILL|%s|%s|%s", bill.BillNumber, bill.Total.StringFixed(2), bill.CreatedAt.Format("2006-01-02"))
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		respondWithError(c, err, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
