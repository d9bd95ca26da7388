package dbmodels

import (
	"fairhire-backend/models"

	"gorm.io/datatypes"
)

type JobApplication struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_offer"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	JobOfferID  string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_offer"`
	JobOffer    *JobOffer  `gorm:"foreignKey:JobOfferID"`

	Status          models.ApplicationStatus `gorm:"type:varchar(255)"`
	StatusInterview models.InterviewStatus   `gorm:"type:varchar(255)"`

	// Point-in-time copy of the candidate profile, written exactly once at
	// first save and never overwritten. Audit record independent of later
	// candidate edits.
	CandidateSnapshot datatypes.JSON
	HasSnapshot       bool

	Analyses []ApplicationAiAnalysis `gorm:"foreignKey:JobApplicationID;constraint:OnDelete:CASCADE"`
}

// HasApprovedAnalysis reports whether any analysis of this application was
// approved. Analyses must be preloaded.
func (a JobApplication) HasApprovedAnalysis() bool {
	for _, analysis := range a.Analyses {
		if analysis.Status == models.AnalysisStatusApproved {
			return true
		}
	}
	return false
}

// PassedFinalInterview reports whether the recruiter moved the candidate past
// the final interview stage.
func (a JobApplication) PassedFinalInterview() bool {
	return a.StatusInterview == models.InterviewStatusPassed ||
		a.StatusInterview == models.InterviewStatusHired
}

// LatestAnalysis returns the most recent analysis by creation time or nil.
// Analyses must be preloaded.
func (a JobApplication) LatestAnalysis() *ApplicationAiAnalysis {
	var latest *ApplicationAiAnalysis
	for k := range a.Analyses {
		if latest == nil || a.Analyses[k].CreatedAt.After(latest.CreatedAt) {
			latest = &a.Analyses[k]
		}
	}
	return latest
}
