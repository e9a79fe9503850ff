package fixture

import (
	"storefront/internal/domain/entity"
)

// Default instance counts for kinds that are not sized by a template table.
const (
	DefaultReviews = 20
	DefaultOrders  = 15
)

// Plan sizes a run. Profiles follow users one to one, tasks are one per
// user per task template, and order items are drawn per order.
type Plan struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Users      int `json:"users"`
	Reviews    int `json:"reviews"`
	Orders     int `json:"orders"`
}

// DefaultPlan sizes every table-driven kind by its template table.
func DefaultPlan(c *Catalog) Plan {
	return Plan{
		Categories: len(c.Categories),
		Products:   len(c.Products),
		Users:      len(c.Users),
		Reviews:    DefaultReviews,
		Orders:     DefaultOrders,
	}
}

// WithDefaults fills zero counts from DefaultPlan.
func (p Plan) WithDefaults(c *Catalog) Plan {
	def := DefaultPlan(c)
	if p.Categories <= 0 {
		p.Categories = def.Categories
	}
	if p.Products <= 0 {
		p.Products = def.Products
	}
	if p.Users <= 0 {
		p.Users = def.Users
	}
	if p.Reviews <= 0 {
		p.Reviews = def.Reviews
	}
	if p.Orders <= 0 {
		p.Orders = def.Orders
	}

	return p
}

// Expected returns the planned count for kind. Order items are drawn,
// so their count is only bounded: ok is false for them.
func (p Plan) Expected(kind entity.Kind, c *Catalog) (count int, ok bool) {
	switch kind {
	case entity.KindCategory:
		return p.Categories, true
	case entity.KindProduct:
		return p.Products, true
	case entity.KindUser, entity.KindProfile:
		return p.Users, true
	case entity.KindReview:
		return p.Reviews, true
	case entity.KindOrder:
		return p.Orders, true
	case entity.KindTask:
		return p.Users * len(c.Tasks), true
	default:
		return 0, false
	}
}
