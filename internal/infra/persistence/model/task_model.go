package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskRewardsModel is embedded into tasks with a reward_ prefix.
type TaskRewardsModel struct {
	Points         int `gorm:"not null;default:0"`
	DiscountPoints int `gorm:"not null;default:0"`
}

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Description string           `gorm:"type:text"`
	Category    string           `gorm:"type:varchar(50)"`
	Type        string           `gorm:"type:varchar(50)"`
	Rewards     TaskRewardsModel `gorm:"embedded;embeddedPrefix:reward_"`
	Status      string           `gorm:"type:varchar(20);not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
