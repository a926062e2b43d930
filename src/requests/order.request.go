package requests

import "github.com/shopspring/decimal"

// ============ CREATE ORDER ============
type OrderItemRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateOrderRequest struct {
	SupplierID           uint               `json:"supplier_id" binding:"required"`
	ExpectedDeliveryDate *string            `json:"expected_delivery_date,omitempty"`
	Notes                *string            `json:"notes,omitempty"`
	Items                []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ============ STATUS TRANSITION ============
type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

// ============ RECEIPT ============
type ReceivedItemRequest struct {
	ID               uint             `json:"id" binding:"required"`
	ReceivedQuantity *decimal.Decimal `json:"received_quantity" binding:"required"`
}

type ReceiveItemsRequest struct {
	Items []ReceivedItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ============ MASTER DATA ============
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Unit        string  `json:"unit" binding:"required"`
}
