package dbmodels

import (
	"fairhire-backend/models"

	"gorm.io/datatypes"
)

// ApplicationAiAnalysis is one scored evaluation of one application.
// Rows are append-only; the current result is the most recent by CreatedAt.
type ApplicationAiAnalysis struct {
	BaseModel
	JobApplicationID string          `gorm:"type:varchar(36);index"`
	JobApplication   *JobApplication `gorm:"foreignKey:JobApplicationID"`

	JobMatchScore   *float64
	SemanticScore   *float64
	StructuralScore *float64
	OverallScore    *float64

	FairnessStructuralScore *float64
	FairnessOverallScore    *float64
	FairnessOverallDelta    *float64

	StructuralBreakdown datatypes.JSON
	FairnessGroups      datatypes.JSON

	Status      models.AnalysisStatus `gorm:"type:varchar(255);default:'In evaluation'"`
	Observation string                `gorm:"type:varchar(500)"`

	ProcessingStartTime   string `gorm:"type:varchar(12)"` // HH:MM:SS
	ProcessingEndTime     string `gorm:"type:varchar(12)"`
	ProcessingTimeSeconds *float64
}
