package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"compras-backend/src/auth"
	"compras-backend/src/models"
	"compras-backend/src/repositories"
)

// ============ REQUEST STRUCTS ============
type OrderItemInput struct {
	ProductID uint
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

type CreateOrderInput struct {
	SupplierID           uint
	ExpectedDeliveryDate *time.Time
	Notes                *string
	Items                []OrderItemInput
}

type CreateOrderResult struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
}

type ReceivedItemInput struct {
	ItemID           uint
	ReceivedQuantity *decimal.Decimal
}

// ============ ORDER SERVICE ============
type OrderService struct {
	DB   *gorm.DB
	Repo *repositories.OrderRepository
	Log  *logrus.Logger
}

// ============ PUBLIC METHODS ============

// CreateOrder persists the order header, its line items and the initial
// "pendiente" history row in one transaction. Nothing is written when any
// validation fails.
func (s *OrderService) CreateOrder(actor auth.User, input CreateOrderInput) (*CreateOrderResult, error) {
	if input.SupplierID == 0 || len(input.Items) == 0 {
		return nil, &ValidationError{Message: "Supplier ID y al menos un item son requeridos"}
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return nil, &ValidationError{Message: "Datos de items inválidos"}
		}
	}

	var result CreateOrderResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		orderNumber, err := s.Repo.GenerateOrderNumber(tx, now.Year())
		if err != nil {
			return &PersistenceError{Op: "generar número de orden", Err: err}
		}

		order := models.PurchaseOrder{
			OrderNumber:          orderNumber,
			SupplierID:           input.SupplierID,
			OrderDate:            now,
			ExpectedDeliveryDate: input.ExpectedDeliveryDate,
			Status:               models.StatusPendiente,
			Notes:                input.Notes,
			CreatedBy:            actor.ID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return &PersistenceError{Op: "crear orden", Err: err}
		}

		// Insert line items preserving input order
		for _, item := range input.Items {
			orderItem := models.OrderItem{
				OrderID:          order.ID,
				ProductID:        item.ProductID,
				Quantity:         item.Quantity,
				UnitPrice:        item.UnitPrice,
				ReceivedQuantity: decimal.Zero,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return &PersistenceError{Op: "crear items de orden", Err: err}
			}
		}

		if err := s.appendHistory(tx, order.ID, models.StatusPendiente, actor.ID, "Creación de orden"); err != nil {
			return err
		}

		result = CreateOrderResult{ID: order.ID, OrderNumber: orderNumber}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.WithFields(logrus.Fields{
		"order_id":     result.ID,
		"order_number": result.OrderNumber,
		"created_by":   actor.ID,
	}).Info("orden creada")

	return &result, nil
}

// UpdateOrderStatus applies a status change and appends the history record
// atomically. The transition graph is deliberately unchecked: any status may
// follow any other.
func (s *OrderService) UpdateOrderStatus(actor auth.User, orderID uint, status models.OrderStatus, notes *string) error {
	if status == "" {
		return &ValidationError{Message: "Status es requerido"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.findOrder(tx, orderID)
		if err != nil {
			return err
		}

		if err := s.setStatus(tx, orderID, status); err != nil {
			return err
		}

		historyNotes := fmt.Sprintf("Cambio de estado de %s a %s", order.Status, status)
		if notes != nil && *notes != "" {
			historyNotes = *notes
		}

		return s.appendHistory(tx, orderID, status, actor.ID, historyNotes)
	})
}

// ReceiveItems records received quantities per line item and derives the
// resulting order status from the aggregate received-vs-ordered totals.
// Derivation only advances toward parcial/completada; completada is terminal,
// so later corrections never move the order back.
func (s *OrderService) ReceiveItems(actor auth.User, orderID uint, items []ReceivedItemInput) error {
	if len(items) == 0 {
		return &ValidationError{Message: "Se requieren items"}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.findOrder(tx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if item.ItemID == 0 || item.ReceivedQuantity == nil {
				return &ValidationError{Message: "Cada item requiere id y received_quantity"}
			}
			if err := s.Repo.UpdateReceivedQuantity(tx, orderID, item.ItemID, *item.ReceivedQuantity); err != nil {
				return &PersistenceError{Op: "actualizar cantidad recibida", Err: err}
			}
		}

		totals, err := s.Repo.ReceiptTotals(tx, orderID)
		if err != nil {
			return &PersistenceError{Op: "calcular totales de recepción", Err: err}
		}

		newStatus := deriveReceiptStatus(order.Status, totals)
		if newStatus == order.Status {
			return nil
		}

		if err := s.setStatus(tx, orderID, newStatus); err != nil {
			return err
		}

		return s.appendHistory(tx, orderID, newStatus, actor.ID, "Actualización por recepción de items")
	})
}

// ListOrders returns all orders for admins, own orders otherwise; optionally
// filtered by exact status.
func (s *OrderService) ListOrders(caller auth.User, status string) ([]repositories.OrderListRow, error) {
	rows, err := s.Repo.ListOrders(caller, status)
	if err != nil {
		return nil, &PersistenceError{Op: "obtener órdenes", Err: err}
	}
	return rows, nil
}

// GetOrder assembles header + items + history, applying role visibility.
func (s *OrderService) GetOrder(caller auth.User, orderID uint) (*repositories.OrderDetail, error) {
	detail, err := s.Repo.GetOrderDetail(orderID, caller)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Orden no encontrada"}
		}
		return nil, &PersistenceError{Op: "obtener orden", Err: err}
	}
	return detail, nil
}

// ============ PRIVATE HELPER METHODS ============

func (s *OrderService) findOrder(tx *gorm.DB, orderID uint) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := tx.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Orden no encontrada"}
		}
		return nil, &PersistenceError{Op: "buscar orden", Err: err}
	}
	return &order, nil
}

func (s *OrderService) setStatus(tx *gorm.DB, orderID uint, status models.OrderStatus) error {
	err := tx.Model(&models.PurchaseOrder{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return &PersistenceError{Op: "actualizar estado", Err: err}
	}
	return nil
}

func (s *OrderService) appendHistory(tx *gorm.DB, orderID uint, status models.OrderStatus, changedBy uint, notes string) error {
	history := models.OrderStatusHistory{
		OrderID:   orderID,
		Status:    status,
		ChangedBy: changedBy,
		Notes:     notes,
	}
	if err := tx.Create(&history).Error; err != nil {
		return &PersistenceError{Op: "registrar historial de estado", Err: err}
	}
	return nil
}

// deriveReceiptStatus maps aggregate totals to the resulting order status.
// completada is terminal; the other derivations never regress an order to
// pendiente/aprobada/en_proceso.
func deriveReceiptStatus(current models.OrderStatus, totals repositories.ReceiptTotals) models.OrderStatus {
	if current == models.StatusCompletada {
		return current
	}
	switch {
	case totals.TotalReceived.GreaterThanOrEqual(totals.TotalOrdered):
		return models.StatusCompletada
	case totals.TotalReceived.IsPositive():
		return models.StatusParcial
	default:
		return current
	}
}
