// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the catalog.
package entity

// Kind names a managed entity type and doubles as its collection or table name.
type Kind string

const (
	KindCategory  Kind = "categories"
	KindProduct   Kind = "products"
	KindUser      Kind = "users"
	KindProfile   Kind = "profiles"
	KindReview    Kind = "reviews"
	KindOrder     Kind = "orders"
	KindOrderItem Kind = "order_items"
	KindTask      Kind = "tasks"
)

// buildOrder lists every kind after all kinds it references.
var buildOrder = []Kind{
	KindCategory,
	KindProduct,
	KindUser,
	KindProfile,
	KindReview,
	KindOrder,
	KindOrderItem,
	KindTask,
}

// Kinds returns all managed kinds in dependency order.
func Kinds() []Kind {
	out := make([]Kind, len(buildOrder))
	copy(out, buildOrder)

	return out
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a managed kind.
func (k Kind) IsValid() bool {
	return k.Rank() >= 0
}

// Rank returns the position of k in dependency order, or -1.
func (k Kind) Rank() int {
	for i, candidate := range buildOrder {
		if candidate == k {
			return i
		}
	}

	return -1
}

// ParseKind converts s to a Kind, reporting whether it is managed.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)

	return k, k.IsValid()
}
