package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/application/service"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/response"
	"github.com/jjpos/jjpos-api/pkg/pagination"
)

// SaleHandler handles the sales history screen: listing past sales and
// reprinting their receipts
type SaleHandler struct {
	salesService   *service.SalesService
	receiptService *service.ReceiptService
	printerService *service.PrinterService
	defaultRate    float64
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(
	salesService *service.SalesService,
	receiptService *service.ReceiptService,
	printerService *service.PrinterService,
	defaultRate float64,
) *SaleHandler {
	return &SaleHandler{
		salesService:   salesService,
		receiptService: receiptService,
		printerService: printerService,
		defaultRate:    defaultRate,
	}
}

func (h *SaleHandler) rate(c *gin.Context) (float64, bool) {
	raw := c.Query("rate")
	if raw == "" {
		return h.defaultRate, true
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 {
		response.BadRequest(c, "Exchange rate must be a positive number")
		return 0, false
	}
	return rate, true
}

// List handles listing sales with date range and customer filters
func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
	}
	params.Pagination.Validate()

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer_id format")
			return
		}
		params.CustomerID = &customerID
	}
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid start_date format, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid end_date format, expected YYYY-MM-DD")
			return
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles retrieving a sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Receipt handles formatting a past sale's receipt at the requested rate
func (h *SaleHandler) Receipt(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rate, ok := h.rate(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.BuildForSale(c.Request.Context(), id, rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt formatted successfully", gin.H{
		"receipt":      receipt,
		"receipt_text": h.printerService.Render(receipt),
	})
}

// Print handles reprinting a past sale's receipt
func (h *SaleHandler) Print(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rate, ok := h.rate(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.BuildForSale(c.Request.Context(), id, rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	text, err := h.printerService.Print(receipt)
	if err != nil {
		response.ErrorWithCode(c, 502, "Receipt could not be printed")
		return
	}
	response.OK(c, "Receipt printed successfully", gin.H{"receipt_text": text})
}
