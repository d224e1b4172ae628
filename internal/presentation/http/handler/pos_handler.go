package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jjpos/jjpos-api/internal/application/service"
	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/request"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/response"
	"github.com/jjpos/jjpos-api/pkg/currency"
)

// POSHandler handles the checkout screen: cart sessions, line edits,
// checkout and the partial-checkout recovery path.
type POSHandler struct {
	cartService     *service.CartService
	checkoutService *service.CheckoutService
	receiptService  *service.ReceiptService
	printerService  *service.PrinterService
	defaultRate     float64
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	receiptService *service.ReceiptService,
	printerService *service.PrinterService,
	defaultRate float64,
) *POSHandler {
	return &POSHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		receiptService:  receiptService,
		printerService:  printerService,
		defaultRate:     defaultRate,
	}
}

// rate returns the exchange rate from the query string, falling back to the
// configured default
func (h *POSHandler) rate(c *gin.Context) (float64, bool) {
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

// CreateSession handles starting a new checkout session
func (h *POSHandler) CreateSession(c *gin.Context) {
	cart := h.cartService.CreateSession()
	response.Created(c, "Session created successfully", cart)
}

// GetCart handles retrieving the session's cart
func (h *POSHandler) GetCart(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved successfully", cart)
}

// SetCustomer handles selecting or clearing the session's customer
func (h *POSHandler) SetCustomer(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}

	var req request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	cart, err := h.cartService.SetCustomer(c.Request.Context(), sessionID, req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer selected successfully", cart)
}

// AddLine handles adding a product to the cart
func (h *POSHandler) AddLine(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}

	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	cart, err := h.cartService.AddProduct(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product added to cart", cart)
}

// UpdateLine handles changing a cart line's quantity and/or unit price
func (h *POSHandler) UpdateLine(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	var req request.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}
	if req.Quantity == nil && req.Price == nil {
		response.BadRequest(c, "Provide a quantity or a price to update")
		return
	}

	if req.Price != nil {
		if _, err := h.cartService.SetPrice(sessionID, productID, currency.CentsFromDollars(*req.Price)); err != nil {
			response.Error(c, err)
			return
		}
	}
	if req.Quantity != nil {
		if _, err := h.cartService.SetQuantity(sessionID, productID, *req.Quantity); err != nil {
			response.Error(c, err)
			return
		}
	}

	cart, err := h.cartService.GetCart(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart line updated successfully", cart)
}

// RemoveLine handles dropping a product from the cart
func (h *POSHandler) RemoveLine(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveLine(sessionID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart line removed successfully", cart)
}

// ClearCart handles emptying the cart
func (h *POSHandler) ClearCart(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}

	cart, err := h.cartService.ClearCart(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared successfully", cart)
}

// Checkout handles turning the cart into a completed sale. On success the
// response carries the sale and its formatted receipt; the receipt is also
// sent to the configured printer, but a print failure never fails the sale.
func (h *POSHandler) Checkout(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}
	rate, ok := h.rate(c)
	if !ok {
		return
	}

	sale, err := h.checkoutService.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondWithReceipt(c, sale, rate, "Checkout completed successfully")
}

// RetryCheckout handles the partial-checkout recovery path: re-attempting
// item insertion for the sale id returned by the failed checkout.
func (h *POSHandler) RetryCheckout(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "sessionId")
	if !ok {
		return
	}
	rate, ok := h.rate(c)
	if !ok {
		return
	}

	var req request.RetryCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	sale, err := h.checkoutService.RetryItems(c.Request.Context(), sessionID, req.SaleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondWithReceipt(c, sale, rate, "Checkout completed successfully")
}

// respondWithReceipt formats the sale's receipt, fires the print and sends
// both back. Receipt or print failures are reported inside the payload: the
// sale is already durable and must read as a success.
func (h *POSHandler) respondWithReceipt(c *gin.Context, sale *entity.Sale, rate float64, message string) {
	payload := gin.H{"sale": sale}

	receipt, err := h.receiptService.BuildFromSale(c.Request.Context(), sale, rate)
	if err != nil {
		payload["receipt_error"] = "Receipt could not be formatted"
		response.OK(c, message, payload)
		return
	}
	payload["receipt"] = receipt

	text, err := h.printerService.Print(receipt)
	payload["receipt_text"] = text
	if err != nil {
		payload["print_error"] = "Receipt could not be printed"
	}

	response.OK(c, message, payload)
}
