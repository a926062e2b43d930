package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"compras-backend/src/config"
	"compras-backend/src/middlewares"
	"compras-backend/src/models"
	"compras-backend/src/requests"
	"compras-backend/src/services"
)

type OrderHandler struct {
	Service *services.OrderService
	Log     *logrus.Logger
}

// ============ MUTATIONS ============

// CreateOrder - Create purchase order with items
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token requerido"})
		return
	}

	var req requests.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Supplier ID y al menos un item son requeridos"})
		return
	}

	var expectedDate *time.Time
	if req.ExpectedDeliveryDate != nil && *req.ExpectedDeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.ExpectedDeliveryDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, *req.ExpectedDeliveryDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Fecha de entrega inválida. Use YYYY-MM-DD o RFC3339"})
				return
			}
		}
		expectedDate = &parsed
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := h.Service.CreateOrder(actor, services.CreateOrderInput{
		SupplierID:           req.SupplierID,
		ExpectedDeliveryDate: expectedDate,
		Notes:                req.Notes,
		Items:                items,
	})
	if err != nil {
		respondError(c, h.Log, "CreateOrder", "Error al crear orden", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           result.ID,
		"order_number": result.OrderNumber,
		"message":      "Orden creada exitosamente",
	})
}

// UpdateOrderStatus - Apply a status transition
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token requerido"})
		return
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de orden inválido"})
		return
	}

	var req requests.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status es requerido"})
		return
	}

	err = h.Service.UpdateOrderStatus(actor, orderID, models.OrderStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, h.Log, "UpdateOrderStatus", "Error al actualizar estado", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Estado actualizado exitosamente"})
}

// UpdateReceivedItems - Record received quantities and reconcile status
func (h *OrderHandler) UpdateReceivedItems(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token requerido"})
		return
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de orden inválido"})
		return
	}

	var req requests.ReceiveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Se requieren items"})
		return
	}

	items := make([]services.ReceivedItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.ReceivedItemInput{
			ItemID:           item.ID,
			ReceivedQuantity: item.ReceivedQuantity,
		})
	}

	if err := h.Service.ReceiveItems(actor, orderID, items); err != nil {
		respondError(c, h.Log, "UpdateReceivedItems", "Error al registrar recepción", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recepción registrada exitosamente"})
}

// ============ QUERIES ============

// GetOrders - List orders visible to the caller, optional status filter
func (h *OrderHandler) GetOrders(c *gin.Context) {
	caller, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token requerido"})
		return
	}

	rows, err := h.Service.ListOrders(caller, c.Query("status"))
	if err != nil {
		respondError(c, h.Log, "GetOrders", "Error al obtener órdenes", err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetOrderByID - Order header with items and status history
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	caller, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token requerido"})
		return
	}

	orderID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de orden inválido"})
		return
	}

	detail, err := h.Service.GetOrder(caller, orderID)
	if err != nil {
		respondError(c, h.Log, "GetOrderByID", "Error al obtener orden", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ============ SHARED HELPERS ============

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps the service error taxonomy to HTTP. Persistence failures
// answer with a generic message; the cause goes to the log.
func respondError(c *gin.Context, log *logrus.Logger, funcName, genericMsg string, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Message})
	default:
		config.LogError(log, "handlers", funcName, c.FullPath(), nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": genericMsg})
	}
}
