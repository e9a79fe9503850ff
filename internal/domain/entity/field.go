package entity

import (
	"github.com/pkg/errors"
)

// Field names a parent attribute that is written after the parent is created.
type Field string

const (
	FieldProfile    Field = "profile"
	FieldOrders     Field = "orders"
	FieldReviews    Field = "reviews"
	FieldItems      Field = "items"
	FieldTotalPrice Field = "totalPrice"
)

var updatableFields = map[Kind][]Field{
	KindUser:    {FieldProfile, FieldOrders},
	KindProduct: {FieldReviews},
	KindOrder:   {FieldItems, FieldTotalPrice},
}

// ErrFieldNotUpdatable is returned when a patch names a field its kind does not allow.
var ErrFieldNotUpdatable = errors.New("field is not updatable")

// UpdatableFields returns the fields Update may write for kind.
func UpdatableFields(kind Kind) []Field {
	return updatableFields[kind]
}

// IsUpdatable reports whether field may be patched on kind.
func IsUpdatable(kind Kind, field Field) bool {
	for _, f := range updatableFields[kind] {
		if f == field {
			return true
		}
	}

	return false
}

// CopyField copies field from src onto dst. Both records must be of the same kind.
func CopyField(dst, src Record, field Field) error {
	if dst.Kind() != src.Kind() || !IsUpdatable(dst.Kind(), field) {
		return errors.Wrapf(ErrFieldNotUpdatable, "%s.%s", dst.Kind(), field)
	}

	switch d := dst.(type) {
	case *User:
		s, _ := src.(*User)
		switch field {
		case FieldProfile:
			d.ProfileID = cloneIDPtr(s.ProfileID)
		case FieldOrders:
			d.OrderIDs = cloneIDs(s.OrderIDs)
		}
	case *Product:
		s, _ := src.(*Product)
		d.ReviewIDs = cloneIDs(s.ReviewIDs)
	case *Order:
		s, _ := src.(*Order)
		switch field {
		case FieldItems:
			d.ItemIDs = cloneIDs(s.ItemIDs)
		case FieldTotalPrice:
			d.TotalPrice = s.TotalPrice
		}
	}

	return nil
}

// BackReferences lists the ids held in a record's back-reference collections.
func BackReferences(rec Record) []Reference {
	switch r := rec.(type) {
	case *User:
		out := refs(string(FieldOrders), KindOrder, r.OrderIDs...)
		if r.ProfileID != nil {
			out = append(refs(string(FieldProfile), KindProfile, *r.ProfileID), out...)
		}

		return out
	case *Product:
		return refs(string(FieldReviews), KindReview, r.ReviewIDs...)
	case *Order:
		return refs(string(FieldItems), KindOrderItem, r.ItemIDs...)
	default:
		return nil
	}
}
