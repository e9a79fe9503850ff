package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products.
type Category struct {
	Base
	Name        string `json:"name" validate:"required"` // Unique within a run.
	Description string `json:"description"`
}

// Kind implements Record.
func (c *Category) Kind() Kind { return KindCategory }

// References implements Record.
func (c *Category) References() []Reference { return nil }

// Clone implements Record.
func (c *Category) Clone() Record {
	cp := *c

	return &cp
}

// Product is a sellable catalog item.
type Product struct {
	Base
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Brand       string          `json:"brand"`
	Rating      float64         `json:"rating" validate:"gte=0,lte=5"` // Catalog rating, independent of reviews.
	ImageURL    string          `json:"imageUrl"`
	CategoryIDs []uuid.UUID     `json:"categories" validate:"min=1"`
	ReviewIDs   []uuid.UUID     `json:"reviews"` // Back-reference view of Review.ProductID.
}

// Kind implements Record.
func (p *Product) Kind() Kind { return KindProduct }

// References implements Record.
func (p *Product) References() []Reference {
	return refs("categories", KindCategory, p.CategoryIDs...)
}

// Clone implements Record.
func (p *Product) Clone() Record {
	cp := *p
	cp.CategoryIDs = cloneIDs(p.CategoryIDs)
	cp.ReviewIDs = cloneIDs(p.ReviewIDs)

	return &cp
}

// Review is a user's rating of a product.
type Review struct {
	Base
	UserID    uuid.UUID `json:"user" validate:"required"`
	ProductID uuid.UUID `json:"product" validate:"required"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Comment   string    `json:"comment"`
}

// Kind implements Record.
func (r *Review) Kind() Kind { return KindReview }

// References implements Record.
func (r *Review) References() []Reference {
	return append(refs("user", KindUser, r.UserID), refs("product", KindProduct, r.ProductID)...)
}

// Clone implements Record.
func (r *Review) Clone() Record {
	cp := *r

	return &cp
}
