package repositories

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"compras-backend/src/auth"
	"compras-backend/src/models"
)

type OrderRepository struct {
	DB *gorm.DB
}

// ============ ROW SHAPES ============

// OrderListRow is an order header joined with display fields.
type OrderListRow struct {
	ID                   uint               `json:"id"`
	OrderNumber          string             `json:"order_number"`
	SupplierID           uint               `json:"supplier_id"`
	SupplierName         string             `json:"supplier_name"`
	OrderDate            time.Time          `json:"order_date"`
	ExpectedDeliveryDate *time.Time         `json:"expected_delivery_date,omitempty"`
	Status               models.OrderStatus `json:"status"`
	Notes                *string            `json:"notes,omitempty"`
	CreatedBy            uint               `json:"created_by"`
	CreatedByName        string             `json:"created_by_name"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type OrderDetail struct {
	OrderListRow
	ContactPerson  *string           `json:"contact_person,omitempty"`
	SupplierEmail  *string           `json:"supplier_email,omitempty"`
	SupplierPhone  *string           `json:"supplier_phone,omitempty"`
	CreatedByEmail string            `json:"created_by_email"`
	Items          []OrderItemDetail `json:"items" gorm:"-"`
	History        []HistoryEntry    `json:"history" gorm:"-"`
}

type OrderItemDetail struct {
	ID               uint            `json:"id"`
	OrderID          uint            `json:"order_id"`
	ProductID        uint            `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
}

type HistoryEntry struct {
	ID            uint               `json:"id"`
	OrderID       uint               `json:"order_id"`
	Status        models.OrderStatus `json:"status"`
	ChangedBy     uint               `json:"changed_by"`
	ChangedByName string             `json:"changed_by_name"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ReceiptTotals aggregates ordered vs received quantities across an order.
type ReceiptTotals struct {
	TotalOrdered  decimal.Decimal `json:"total_ordered"`
	TotalReceived decimal.Decimal `json:"total_received"`
}

// ============ ORDER NUMBER GENERATOR ============

// GenerateOrderNumber derives the year-scoped sequential identifier.
// It must run on the same transaction as the insert that consumes it so
// the per-year count is a consistent read.
func (r *OrderRepository) GenerateOrderNumber(tx *gorm.DB, year int) (string, error) {
	var count int64
	err := tx.Model(&models.PurchaseOrder{}).
		Where("EXTRACT(YEAR FROM order_date) = ?", year).
		Count(&count).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("OC-%d-%04d", year, count+1), nil
}

// ============ RECEIPT AGGREGATES ============

func (r *OrderRepository) ReceiptTotals(tx *gorm.DB, orderID uint) (ReceiptTotals, error) {
	var totals ReceiptTotals
	err := tx.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total_ordered, COALESCE(SUM(received_quantity), 0) AS total_received").
		Where("order_id = ?", orderID).
		Scan(&totals).Error

	return totals, err
}

// UpdateReceivedQuantity is scoped to (item, order) so foreign items can
// never be altered through another order's receipt.
func (r *OrderRepository) UpdateReceivedQuantity(tx *gorm.DB, orderID, itemID uint, received decimal.Decimal) error {
	return tx.Model(&models.OrderItem{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("received_quantity", received).Error
}

// ============ QUERY LAYER ============

func (r *OrderRepository) ListOrders(caller auth.User, status string) ([]OrderListRow, error) {
	query := r.DB.Model(&models.PurchaseOrder{}).
		Select("purchase_orders.*, s.name AS supplier_name, u.name AS created_by_name").
		Joins("JOIN suppliers s ON s.id = purchase_orders.supplier_id").
		Joins("JOIN users u ON u.id = purchase_orders.created_by")

	if !caller.IsAdmin() {
		query = query.Where("purchase_orders.created_by = ?", caller.ID)
	}
	if status != "" {
		query = query.Where("purchase_orders.status = ?", status)
	}

	rows := make([]OrderListRow, 0)
	err := query.
		Order("purchase_orders.order_date DESC, purchase_orders.id DESC").
		Scan(&rows).Error

	return rows, err
}

// GetOrderDetail assembles header + items + history. A foreign order looks
// exactly like a missing one to a non-admin caller.
func (r *OrderRepository) GetOrderDetail(orderID uint, caller auth.User) (*OrderDetail, error) {
	query := r.DB.Model(&models.PurchaseOrder{}).
		Select(`purchase_orders.*, s.name AS supplier_name, s.contact_person, s.email AS supplier_email,
			s.phone AS supplier_phone, u.name AS created_by_name, u.email AS created_by_email`).
		Joins("JOIN suppliers s ON s.id = purchase_orders.supplier_id").
		Joins("JOIN users u ON u.id = purchase_orders.created_by").
		Where("purchase_orders.id = ?", orderID)

	if !caller.IsAdmin() {
		query = query.Where("purchase_orders.created_by = ?", caller.ID)
	}

	var detail OrderDetail
	if err := query.Take(&detail).Error; err != nil {
		return nil, err
	}

	items := make([]OrderItemDetail, 0)
	err := r.DB.Model(&models.OrderItem{}).
		Select("order_items.*, p.name AS product_name, p.unit").
		Joins("JOIN products p ON p.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	detail.Items = items

	history := make([]HistoryEntry, 0)
	err = r.DB.Model(&models.OrderStatusHistory{}).
		Select("order_status_history.*, u.name AS changed_by_name").
		Joins("JOIN users u ON u.id = order_status_history.changed_by").
		Where("order_status_history.order_id = ?", orderID).
		Order("order_status_history.created_at DESC, order_status_history.id DESC").
		Scan(&history).Error
	if err != nil {
		return nil, err
	}
	detail.History = history

	return &detail, nil
}
