package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account.
type User struct {
	Base
	Username     string      `json:"username" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	Password     string      `json:"-" validate:"required_without=PasswordHash"` // Plain credential, hashed by the store before it is durable.
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Role         Role        `json:"role" validate:"required"`
	ProfileID    *uuid.UUID  `json:"profile"` // Back-reference view of Profile.UserID, nil until reconciled.
	OrderIDs     []uuid.UUID `json:"orders"`  // Back-reference view of Order.UserID in creation order.
}

// Kind implements Record.
func (u *User) Kind() Kind { return KindUser }

// References implements Record.
func (u *User) References() []Reference { return nil }

// Clone implements Record.
func (u *User) Clone() Record {
	cp := *u
	cp.ProfileID = cloneIDPtr(u.ProfileID)
	cp.OrderIDs = cloneIDs(u.OrderIDs)

	return &cp
}

// Gender values used by profiles.
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// Profile holds personal data of exactly one user.
type Profile struct {
	Base
	UserID        uuid.UUID   `json:"user" validate:"required"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	DateOfBirth   time.Time   `json:"dateOfBirth"`
	Gender        string      `json:"gender" validate:"omitempty,oneof=female male"`
	LoyaltyPoints int         `json:"loyaltyPoints" validate:"gte=0"`
	Preferences   Preferences `json:"preferences"`
}

// Preferences are the beauty preferences of a profile.
type Preferences struct {
	SkinType           string      `json:"skinType"`
	Concerns           []string    `json:"concerns"`
	FavoriteCategories []uuid.UUID `json:"favoriteCategories"`
}

// Kind implements Record.
func (p *Profile) Kind() Kind { return KindProfile }

// References implements Record.
func (p *Profile) References() []Reference {
	return append(refs("user", KindUser, p.UserID), refs("preferences.favoriteCategories", KindCategory, p.Preferences.FavoriteCategories...)...)
}

// Clone implements Record.
func (p *Profile) Clone() Record {
	cp := *p
	cp.Preferences.Concerns = append([]string(nil), p.Preferences.Concerns...)
	cp.Preferences.FavoriteCategories = cloneIDs(p.Preferences.FavoriteCategories)

	return &cp
}

func cloneIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	cp := *id

	return &cp
}
