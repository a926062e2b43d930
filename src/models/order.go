package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ ENUMS & TYPES ============
type OrderStatus string

const (
	StatusPendiente  OrderStatus = "pendiente"
	StatusAprobada   OrderStatus = "aprobada"
	StatusEnProceso  OrderStatus = "en_proceso"
	StatusParcial    OrderStatus = "parcial"
	StatusCompletada OrderStatus = "completada"
	StatusCancelada  OrderStatus = "cancelada"
)

// ============ MAIN ORDER MODEL ============
type PurchaseOrder struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Assigned once at creation, never recomputed
	OrderNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`

	// Supplier reference
	SupplierID uint `gorm:"not null;index" json:"supplier_id"`

	// Dates
	OrderDate            time.Time  `gorm:"type:date;not null;index" json:"order_date"`
	ExpectedDeliveryDate *time.Time `gorm:"type:date" json:"expected_delivery_date,omitempty"`

	// Cached projection of the latest history entry
	Status OrderStatus `gorm:"type:varchar(20);not null;default:pendiente;index" json:"status"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`

	// Audit trail
	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Supplier *Supplier            `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Creator  *User                `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Items    []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	History  []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"history,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// ============ LINE ITEM MODEL ============
type OrderItem struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`

	// Product reference
	ProductID uint `gorm:"not null;index" json:"product_id"`

	// Quantities are immutable after creation except received_quantity,
	// which is mutated only by receipt reconciliation
	Quantity         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"received_quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ============ STATUS HISTORY MODEL ============
// Append-only: rows are never mutated or deleted.
type OrderStatusHistory struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`

	Status OrderStatus `gorm:"type:varchar(20);not null" json:"status"`

	ChangedBy uint   `gorm:"not null" json:"changed_by"`
	Notes     string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	Actor *User `gorm:"foreignKey:ChangedBy" json:"actor,omitempty"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
