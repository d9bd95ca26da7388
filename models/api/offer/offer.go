package offerapimodels

import (
	"github.com/pkg/errors"

	"fairhire-backend/lib/utils/helpers"
	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

type OfferData struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	JobPositionID  string                `json:"job_position_id"`
	CompanyID      string                `json:"company_id"`
	Location       string                `json:"location"`
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	IsActive       *bool                 `json:"is_active"`
	EmploymentType models.EmploymentType `json:"employment_type"`
	SalaryMin      *float64              `json:"salary_min"`
	SalaryMax      *float64              `json:"salary_max"`
	Mode           models.WorkMode       `json:"mode"`
	IsUrgent       *bool                 `json:"is_urgent"`

	SkillIDs     []string `json:"skill_ids"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

func (d OfferData) Validate() error {
	if d.Title == "" {
		return errors.New("offer title is not specified")
	}
	if d.Description == "" {
		return errors.New("offer description is not specified")
	}
	if d.JobPositionID == "" {
		return errors.New("job position is not specified")
	}
	if d.CompanyID == "" {
		return errors.New("company is not specified")
	}
	start, err := helpers.ParseDatePtr(d.StartDate)
	if err != nil {
		return errors.New("invalid start date, expected format 2006-01-02")
	}
	end, err := helpers.ParseDatePtr(d.EndDate)
	if err != nil {
		return errors.New("invalid end date, expected format 2006-01-02")
	}
	if start != nil && end != nil && end.Before(*start) {
		return errors.New("end date precedes start date")
	}
	if d.SalaryMin != nil && d.SalaryMax != nil && *d.SalaryMax < *d.SalaryMin {
		return errors.New("maximum salary is below minimum salary")
	}
	return nil
}

type OfferView struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	JobPosition    string                `json:"job_position,omitempty"`
	CompanyName    string                `json:"company_name,omitempty"`
	Location       string                `json:"location,omitempty"`
	StartDate      *string               `json:"start_date,omitempty"`
	EndDate        *string               `json:"end_date,omitempty"`
	IsActive       *bool                 `json:"is_active,omitempty"`
	EmploymentType models.EmploymentType `json:"employment_type,omitempty"`
	SalaryMin      *float64              `json:"salary_min,omitempty"`
	SalaryMax      *float64              `json:"salary_max,omitempty"`
	Mode           models.WorkMode       `json:"mode,omitempty"`
	IsUrgent       *bool                 `json:"is_urgent,omitempty"`

	Skills       []OfferSkillView `json:"skills,omitempty"`
	Requirements []string         `json:"requirements,omitempty"`
	Benefits     []string         `json:"benefits,omitempty"`
}

type OfferSkillView struct {
	ID   string `json:"id"`
	Name string `json:"skill_name"`
}

func OfferConvert(rec dbmodels.JobOffer) OfferView {
	view := OfferView{
		ID:             rec.ID,
		Title:          rec.Title,
		Description:    rec.Description,
		Location:       rec.Location,
		StartDate:      helpers.FormatDatePtr(rec.StartDate),
		EndDate:        helpers.FormatDatePtr(rec.EndDate),
		IsActive:       rec.IsActive,
		EmploymentType: rec.EmploymentType,
		SalaryMin:      rec.SalaryMin,
		SalaryMax:      rec.SalaryMax,
		Mode:           rec.Mode,
		IsUrgent:       rec.IsUrgent,
	}
	if rec.JobPosition != nil {
		view.JobPosition = rec.JobPosition.Name
	}
	if rec.Company != nil {
		view.CompanyName = rec.Company.Name
	}
	for _, skill := range rec.Skills {
		skillView := OfferSkillView{ID: skill.ID}
		if skill.Skill != nil {
			skillView.Name = skill.Skill.Name
		}
		view.Skills = append(view.Skills, skillView)
	}
	for _, req := range rec.Requirements {
		view.Requirements = append(view.Requirements, req.Description)
	}
	for _, benefit := range rec.Benefits {
		view.Benefits = append(view.Benefits, benefit.Description)
	}
	return view
}
