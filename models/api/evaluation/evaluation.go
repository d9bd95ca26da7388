package evaluationapimodels

import (
	"encoding/json"
)

// EvaluationPayload is the request body sent to the external scorer.
// Key names are the scorer's wire contract, do not rename.
type EvaluationPayload struct {
	JobTitle               string             `json:"job_title"`
	JobDescription         string             `json:"job_description"`
	JobPosition            *string            `json:"job_position"`
	JobPositionDescription *string            `json:"job_position_description"`
	Company                *string            `json:"company"`
	Location               string             `json:"location"`
	StartDate              *string            `json:"start_date"`
	EndDate                *string            `json:"end_date"`
	IsActive               *bool              `json:"is_active"`
	EmploymentType         string             `json:"employment_type"`
	SalaryMin              *float64           `json:"salary_min"`
	SalaryMax              *float64           `json:"salary_max"`
	Mode                   string             `json:"mode"`
	IsUrgent               *bool              `json:"is_urgent"`
	Candidates             []CandidatePayload `json:"candidates"`
}

type CandidatePayload struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	ShortBio            string        `json:"short_bio"`
	Experience          []string      `json:"experience"`
	EducationLevel      string        `json:"education_level"`
	Skills              []SkillDetail `json:"skills"`
	ExperienceYears     float64       `json:"experience_years"`
	CertificationsCount int           `json:"certifications_count"`
	Languages           []SkillDetail `json:"languages"`
	Ofimatic            []SkillDetail `json:"ofimatic"`
	CvPdfBase64         *string       `json:"cv_pdf_base64"`
	UniversityName      *string       `json:"university_name"`
	Age                 *int          `json:"age"`
	Availability        string        `json:"availability"`
	CreatedAt           *string       `json:"created_at"`
}

type SkillDetail struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Level    *string `json:"level"`
}

// CandidateError records one application excluded from the payload.
type CandidateError struct {
	ApplicationID string `json:"application_id"`
	CandidateName string `json:"candidate_name"`
	Error         string `json:"error"`
}

// EvaluationResponse is the scorer's reply.
type EvaluationResponse struct {
	Candidates       []CandidateResult `json:"candidates"`
	SelectionSummary []SummaryRow      `json:"selection_summary"`
}

type CandidateResult struct {
	ID                      string          `json:"id"`
	JobMatchScore           *float64        `json:"job_match_score"`
	SemanticScore           *float64        `json:"semantic_score"`
	StructuralScore         *float64        `json:"structural_score"`
	FairnessStructuralScore *float64        `json:"fairness_structural_score"`
	FairnessOverallScore    *float64        `json:"fairness_overall_score"`
	FairnessOverallDelta    *float64        `json:"fairness_overall_delta"`
	StructuralBreakdown     json.RawMessage `json:"structural_breakdown"`
	FairnessGroups          json.RawMessage `json:"fairness_groups"`
	DecisionLabel           string          `json:"decision_label"`
	ProcessingStartTime     string          `json:"processing_start_time"`
	ProcessingEndTime       string          `json:"processing_end_time"`
	ProcessingTimeSeconds   *float64        `json:"processing_time_seconds"`
}

// SummaryRow keeps the scorer's Spanish field names.
type SummaryRow struct {
	Fecha                 string   `json:"fecha"`
	Criterio              string   `json:"criterio"`
	GrupoProtegido        string   `json:"grupo_protegido"`
	TotalCvsGp            int      `json:"total_cvs_gp"`
	CvsPreseleccionadosGp int      `json:"cvs_preseleccionados_gp"`
	TasaSeleccionGp       float64  `json:"tasa_seleccion_gp"`
	GrupoReferente        string   `json:"grupo_referente"`
	TotalCvsGr            int      `json:"total_cvs_gr"`
	CvsPreseleccionadosGr int      `json:"cvs_preseleccionados_gr"`
	TasaSeleccionGr       float64  `json:"tasa_seleccion_gr"`
	Spd                   *float64 `json:"spd"`
}

// RunView is what the caller of an evaluation run receives.
type RunView struct {
	RequestID string           `json:"request_id"`
	Evaluated int              `json:"evaluated"`
	Errors    []CandidateError `json:"errors,omitempty"`
}
