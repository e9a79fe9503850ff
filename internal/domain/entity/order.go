package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods.
const (
	PaymentCreditCard   = "credit_card"
	PaymentPayPal       = "paypal"
	PaymentBankTransfer = "bank_transfer"
)

// Order is a purchase made by a user.
type Order struct {
	Base
	UserID          uuid.UUID       `json:"user" validate:"required"`
	ItemIDs         []uuid.UUID     `json:"items"`                       // Back-reference view of OrderItem.OrderID in creation order.
	TotalPrice      decimal.Decimal `json:"totalPrice" validate:"gte=0"` // Derived from the order's items.
	Status          string          `json:"status" validate:"oneof=pending processing shipped delivered cancelled"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" validate:"oneof=credit_card paypal bank_transfer"`
	IsPaid          bool            `json:"isPaid"`
}

// Kind implements Record.
func (o *Order) Kind() Kind { return KindOrder }

// References implements Record.
func (o *Order) References() []Reference {
	return refs("user", KindUser, o.UserID)
}

// Clone implements Record.
func (o *Order) Clone() Record {
	cp := *o
	cp.ItemIDs = cloneIDs(o.ItemIDs)

	return &cp
}

// OrderItem is one line of an order. Price is the product price at creation time.
type OrderItem struct {
	Base
	OrderID   uuid.UUID       `json:"order" validate:"required"`
	ProductID uuid.UUID       `json:"product" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
}

// Kind implements Record.
func (i *OrderItem) Kind() Kind { return KindOrderItem }

// References implements Record.
func (i *OrderItem) References() []Reference {
	return append(refs("order", KindOrder, i.OrderID), refs("product", KindProduct, i.ProductID)...)
}

// Clone implements Record.
func (i *OrderItem) Clone() Record {
	cp := *i

	return &cp
}

// Subtotal returns price times quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal sums the subtotals of the items that belong to orderID.
// Items of other orders are ignored.
func ItemsTotal(orderID uuid.UUID, items []*OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.OrderID != orderID {
			continue
		}
		total = total.Add(item.Subtotal())
	}

	return total
}
