package dbmodels

import (
	"time"

	"gorm.io/datatypes"
)

// TimeMetrics records processing duration of one evaluation run.
type TimeMetrics struct {
	BaseModel
	JobOfferID string `gorm:"type:varchar(36);index"`
	RequestID  string `gorm:"type:varchar(64);uniqueIndex"`

	CandidateCount int
	StartedAt      *time.Time
	FinishedAt     *time.Time

	ProcessingTimeSeconds      float64
	ProcessingTimePerCandidate float64

	// List of {id, name, processing_time_seconds} objects.
	CandidateProcessingTimes datatypes.JSON
}
