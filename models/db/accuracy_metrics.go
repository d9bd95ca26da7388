package dbmodels

import (
	"time"
)

// AccuracyMetrics aggregates all applications created on one calendar date.
// Rows are created lazily and recomputed in place, never deleted. The
// association to applications is observational, applications are not owned.
type AccuracyMetrics struct {
	BaseModel
	InterviewDate time.Time `gorm:"type:date;uniqueIndex"`

	JobApplications []JobApplication `gorm:"many2many:accuracy_metric_applications"`

	TotalCvs         int
	TotalCvsSelected int
	TotalCvsPassedEf int

	// Percentage, rounded to 3 decimals. 0 when nothing was selected.
	SelectionAccuracy float64
}
