package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jjpos/jjpos-api/internal/application/service"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/request"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer and customer price list HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with optional name search
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", customers)
}

// Get handles retrieving a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.CustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles removing a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer deleted successfully", nil)
}

// ListPrices handles listing a customer's override prices
func (h *CustomerHandler) ListPrices(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	prices, err := h.customerService.ListCustomerPrices(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer prices retrieved successfully", prices)
}

// CreatePrice handles adding a per-product override price
func (h *CustomerHandler) CreatePrice(c *gin.Context) {
	var req request.CustomerPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	price, err := h.customerService.CreateCustomerPrice(c.Request.Context(), &service.CustomerPriceInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Price:      req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer price created successfully", price)
}

// UpdatePrice handles changing an override price
func (h *CustomerHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateCustomerPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	price, err := h.customerService.UpdateCustomerPrice(c.Request.Context(), id, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer price updated successfully", price)
}

// DeletePrice handles removing an override price
func (h *CustomerHandler) DeletePrice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomerPrice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer price deleted successfully", nil)
}
