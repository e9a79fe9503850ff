package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the terminal or in-flight status of a fixture run.
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusDone    RunStatus = "done"
	RunStatusFailed  RunStatus = "failed"
)

// Stage is a state of the fixture pipeline.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageResetting   Stage = "resetting"
	StageBuilding    Stage = "building"
	StageReconciling Stage = "reconciling"
	StageDeriving    Stage = "deriving"
	StageVerifying   Stage = "verifying"
	StageReporting   Stage = "reporting"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Run is a ledger entry for one fixture generation. The latest run with
// status done identifies the current dataset.
type Run struct {
	ID            uuid.UUID      `json:"id"`
	Status        RunStatus      `json:"status"`
	Stage         Stage          `json:"stage"`
	Kind          Kind           `json:"kind,omitempty"`          // Kind being processed when the run stopped.
	LastCommitted Kind           `json:"lastCommitted,omitempty"` // Last kind whose writes fully committed.
	Error         string         `json:"error,omitempty"`
	Counts        map[Kind]int64 `json:"counts"`
	Seed          uint64         `json:"seed"`
	StartedAt     time.Time      `json:"startedAt"`
	FinishedAt    *time.Time     `json:"finishedAt,omitempty"`
}

// Finish closes the run with the given status.
func (r *Run) Finish(status RunStatus, at time.Time) {
	r.Status = status
	r.FinishedAt = &at
	if status == RunStatusDone {
		r.Stage = StageDone
	} else {
		r.Stage = StageFailed
	}
}
