// Package export renders stored records as flat CSV tables.
package export

import (
	"storefront/internal/domain/entity"
)

// ColumnType controls how a JSON value is rendered into a cell.
type ColumnType int

const (
	// Text renders the value verbatim. Numbers keep their JSON text.
	Text ColumnType = iota
	// Date renders an RFC 3339 timestamp as UTC with millisecond precision.
	Date
	// List joins the elements of an array with ListSeparator.
	List
)

// ListSeparator joins identifier lists inside one cell.
const ListSeparator = ";"

// DateLayout is the rendering of Date columns.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Column maps a header to a dotted gjson path into the record's JSON form.
type Column struct {
	Header string
	Path   string
	Type   ColumnType
}

// Schema is the column list of one kind.
type Schema struct {
	Kind    entity.Kind
	Columns []Column
}

// Headers returns the header row.
func (s Schema) Headers() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, c.Header)
	}

	return out
}

// Key returns the object key the kind is exported under.
func (s Schema) Key() string {
	return s.Kind.String() + ".csv"
}

var schemas = []Schema{
	{Kind: entity.KindUser, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "username", Path: "username"},
		{Header: "email", Path: "email"},
		{Header: "role", Path: "role"},
		{Header: "profile", Path: "profile"},
		{Header: "orders", Path: "orders", Type: List},
		{Header: "createdAt", Path: "createdAt", Type: Date},
		{Header: "updatedAt", Path: "updatedAt", Type: Date},
	}},
	{Kind: entity.KindCategory, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "name", Path: "name"},
		{Header: "description", Path: "description"},
		{Header: "createdAt", Path: "createdAt", Type: Date},
	}},
	{Kind: entity.KindProduct, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "name", Path: "name"},
		{Header: "description", Path: "description"},
		{Header: "price", Path: "price"},
		{Header: "stock", Path: "stock"},
		{Header: "brand", Path: "brand"},
		{Header: "category", Path: "categories", Type: List},
		{Header: "imageUrl", Path: "imageUrl"},
		{Header: "createdAt", Path: "createdAt", Type: Date},
		{Header: "updatedAt", Path: "updatedAt", Type: Date},
	}},
	{Kind: entity.KindProfile, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "user", Path: "user"},
		{Header: "firstName", Path: "firstName"},
		{Header: "lastName", Path: "lastName"},
		{Header: "gender", Path: "gender"},
		{Header: "loyaltyPoints", Path: "loyaltyPoints"},
		{Header: "preferences.skinType", Path: "preferences.skinType"},
		{Header: "preferences.concerns", Path: "preferences.concerns", Type: List},
		{Header: "createdAt", Path: "createdAt", Type: Date},
	}},
	{Kind: entity.KindOrder, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "user", Path: "user"},
		{Header: "totalPrice", Path: "totalPrice"},
		{Header: "status", Path: "status"},
		{Header: "paymentMethod", Path: "paymentMethod"},
		{Header: "isPaid", Path: "isPaid"},
		{Header: "items", Path: "items", Type: List},
		{Header: "createdAt", Path: "createdAt", Type: Date},
		{Header: "updatedAt", Path: "updatedAt", Type: Date},
	}},
	{Kind: entity.KindOrderItem, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "order", Path: "order"},
		{Header: "product", Path: "product"},
		{Header: "quantity", Path: "quantity"},
		{Header: "price", Path: "price"},
	}},
	{Kind: entity.KindReview, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "product", Path: "product"},
		{Header: "user", Path: "user"},
		{Header: "rating", Path: "rating"},
		{Header: "comment", Path: "comment"},
		{Header: "createdAt", Path: "createdAt", Type: Date},
	}},
	{Kind: entity.KindTask, Columns: []Column{
		{Header: "_id", Path: "id"},
		{Header: "user", Path: "user"},
		{Header: "title", Path: "title"},
		{Header: "category", Path: "category"},
		{Header: "rewards.points", Path: "rewards.points"},
		{Header: "status", Path: "status"},
		{Header: "completedAt", Path: "completedAt", Type: Date},
	}},
}

// Schemas returns every export schema in export order.
func Schemas() []Schema {
	out := make([]Schema, len(schemas))
	copy(out, schemas)

	return out
}

// SchemaFor returns the schema of kind.
func SchemaFor(kind entity.Kind) (Schema, bool) {
	for _, s := range schemas {
		if s.Kind == kind {
			return s, true
		}
	}

	return Schema{}, false
}
