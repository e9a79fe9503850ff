package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. ProfileID and OrderIDs are back-reference
// views and carry no foreign key of their own.
type UserModel struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	Username     string                         `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email        string                         `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string                         `gorm:"type:varchar(255);not null"`
	Phone        string                         `gorm:"type:varchar(50)"`
	Address      string                         `gorm:"type:text"`
	Role         string                         `gorm:"type:varchar(20);not null"`
	ProfileID    *uuid.UUID                     `gorm:"type:uuid"`
	OrderIDs     datatypes.JSONSlice[uuid.UUID] `gorm:"column:order_ids"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfilePreferences is stored as a JSON document on profiles.
type ProfilePreferences struct {
	SkinType           string      `json:"skinType"`
	Concerns           []string    `json:"concerns"`
	FavoriteCategories []uuid.UUID `json:"favoriteCategories"`
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_user_id"`
	FirstName     string    `gorm:"type:varchar(100)"`
	LastName      string    `gorm:"type:varchar(100)"`
	DateOfBirth   time.Time
	Gender        string `gorm:"type:varchar(10)"`
	LoyaltyPoints int    `gorm:"not null;default:0"`
	Preferences   datatypes.JSONType[ProfilePreferences]
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
