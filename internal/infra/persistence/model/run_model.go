package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FixtureRunModel mirrors the 'fixture_runs' ledger table. It is never truncated by a reset.
// Seed holds the uint64 run seed bit-for-bit since bigint is signed.
type FixtureRunModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	Stage         string    `gorm:"type:varchar(20);not null"`
	Kind          string    `gorm:"type:varchar(20)"`
	LastCommitted string    `gorm:"type:varchar(20)"`
	Error         string    `gorm:"type:text"`
	Counts        datatypes.JSONType[map[string]int64]
	Seed          int64     `gorm:"not null"`
	StartedAt     time.Time `gorm:"not null;index"`
	FinishedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (FixtureRunModel) TableName() string {
	return "fixture_runs"
}
