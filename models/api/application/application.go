package applicationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"fairhire-backend/models"
	offerapimodels "fairhire-backend/models/api/offer"
	dbmodels "fairhire-backend/models/db"
)

type ApplicationData struct {
	JobOfferID string `json:"job_offer_id"`
}

func (d ApplicationData) Validate() error {
	if d.JobOfferID == "" {
		return errors.New("job offer is not specified")
	}
	return nil
}

type InterviewStatusData struct {
	Status models.InterviewStatus `json:"status"`
}

func (d InterviewStatusData) Validate() error {
	switch d.Status {
	case models.InterviewStatusPending, models.InterviewStatusScheduled,
		models.InterviewStatusPassed, models.InterviewStatusFailed,
		models.InterviewStatusHired:
		return nil
	}
	return errors.New("unknown interview status")
}

type AnalysisView struct {
	ID                   string                `json:"id"`
	JobMatchScore        *float64              `json:"job_match_score,omitempty"`
	SemanticScore        *float64              `json:"semantic_score,omitempty"`
	StructuralScore      *float64              `json:"structural_score,omitempty"`
	OverallScore         *float64              `json:"overall_score,omitempty"`
	FairnessOverallScore *float64              `json:"fairness_overall_score,omitempty"`
	FairnessOverallDelta *float64              `json:"fairness_overall_delta,omitempty"`
	Status               models.AnalysisStatus `json:"status"`
	Observation          string                `json:"observation,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
}

func AnalysisConvert(rec dbmodels.ApplicationAiAnalysis) AnalysisView {
	return AnalysisView{
		ID:                   rec.ID,
		JobMatchScore:        rec.JobMatchScore,
		SemanticScore:        rec.SemanticScore,
		StructuralScore:      rec.StructuralScore,
		OverallScore:         rec.OverallScore,
		FairnessOverallScore: rec.FairnessOverallScore,
		FairnessOverallDelta: rec.FairnessOverallDelta,
		Status:               rec.Status,
		Observation:          rec.Observation,
		CreatedAt:            rec.CreatedAt,
	}
}

type ApplicationView struct {
	ID              string                    `json:"id"`
	CandidateID     string                    `json:"candidate_id"`
	CandidateName   string                    `json:"candidate_name,omitempty"`
	Status          models.ApplicationStatus  `json:"status,omitempty"`
	StatusInterview models.InterviewStatus    `json:"status_interview,omitempty"`
	HasSnapshot     bool                      `json:"has_snapshot"`
	CreatedAt       time.Time                 `json:"created_at"`
	JobOffer        *offerapimodels.OfferView `json:"job_offer,omitempty"`
	Analysis        *AnalysisView             `json:"analysis,omitempty"`
}

// ApplicationConvert builds the view with the most recent analysis, if any.
func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:              rec.ID,
		CandidateID:     rec.CandidateID,
		Status:          rec.Status,
		StatusInterview: rec.StatusInterview,
		HasSnapshot:     rec.HasSnapshot,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.Name
	}
	if rec.JobOffer != nil {
		offerView := offerapimodels.OfferConvert(*rec.JobOffer)
		view.JobOffer = &offerView
	}
	if latest := rec.LatestAnalysis(); latest != nil {
		analysisView := AnalysisConvert(*latest)
		view.Analysis = &analysisView
	}
	return view
}
