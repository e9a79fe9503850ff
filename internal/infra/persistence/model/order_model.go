package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. TotalPrice is derived from order_items.
type OrderModel struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID                      `gorm:"type:uuid;not null;index"`
	ItemIDs         datatypes.JSONSlice[uuid.UUID] `gorm:"column:item_ids"`
	TotalPrice      decimal.Decimal                `gorm:"type:decimal(10,2);not null;default:0"`
	Status          string                         `gorm:"type:varchar(20);not null"`
	ShippingAddress string                         `gorm:"type:text"`
	PaymentMethod   string                         `gorm:"type:varchar(20);not null"`
	IsPaid          bool                           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the product price at purchase time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Order   *OrderModel   `gorm:"foreignKey:OrderID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
