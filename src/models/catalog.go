package models

import "time"

// ============ SUPPORTING MODELS ============
type Supplier struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	ContactPerson *string   `gorm:"type:varchar(200)" json:"contact_person,omitempty"`
	Email         *string   `gorm:"type:varchar(200)" json:"email,omitempty"`
	Phone         *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Unit        string    `gorm:"type:varchar(20);not null" json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// User rows back the created_by / changed_by references; authentication
// itself happens outside this service.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Email     string    `gorm:"type:varchar(200);unique;not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
