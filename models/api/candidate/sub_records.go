package candidateapimodels

import (
	"github.com/pkg/errors"

	"fairhire-backend/lib/utils/helpers"
	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

type SkillData struct {
	SkillID          string             `json:"skill_id"`
	ProficiencyLevel models.Proficiency `json:"proficiency_level"`
}

func (d SkillData) Validate() error {
	if d.SkillID == "" {
		return errors.New("skill is not specified")
	}
	if models.ProficiencyLabel(d.ProficiencyLevel) == nil {
		return errors.New("proficiency level must be between 1 and 3")
	}
	return nil
}

type SkillView struct {
	ID               string               `json:"id"`
	SkillID          string               `json:"skill_id"`
	Name             string               `json:"name"`
	Category         models.SkillCategory `json:"category"`
	ProficiencyLevel models.Proficiency   `json:"proficiency_level"`
}

func SkillConvert(rec dbmodels.CandidateSkill) SkillView {
	view := SkillView{
		ID:               rec.ID,
		SkillID:          rec.SkillID,
		ProficiencyLevel: rec.ProficiencyLevel,
	}
	if rec.Skill != nil {
		view.Name = rec.Skill.Name
		view.Category = rec.Skill.Category
	}
	return view
}

type ExperienceData struct {
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"` // empty means ongoing
	Description string `json:"description"`
}

func (d ExperienceData) Validate() error {
	if d.CompanyName == "" {
		return errors.New("company name is not specified")
	}
	if d.Position == "" {
		return errors.New("position is not specified")
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
	return nil
}

type ExperienceView struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	Position    string  `json:"position"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description,omitempty"`
}

func ExperienceConvert(rec dbmodels.Experience) ExperienceView {
	return ExperienceView{
		ID:          rec.ID,
		CompanyName: rec.CompanyName,
		Position:    rec.Position,
		StartDate:   helpers.FormatDatePtr(rec.StartDate),
		EndDate:     helpers.FormatDatePtr(rec.EndDate),
		Description: rec.Description,
	}
}

type EducationData struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsStudying   *bool  `json:"is_studying"`
	Description  string `json:"description"`
}

func (d EducationData) Validate() error {
	if d.Institution == "" {
		return errors.New("institution is not specified")
	}
	if d.Degree == "" {
		return errors.New("degree is not specified")
	}
	if _, err := helpers.ParseDatePtr(d.StartDate); err != nil {
		return errors.New("invalid start date, expected format 2006-01-02")
	}
	if _, err := helpers.ParseDatePtr(d.EndDate); err != nil {
		return errors.New("invalid end date, expected format 2006-01-02")
	}
	return nil
}

type EducationView struct {
	ID           string  `json:"id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"field_of_study,omitempty"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsStudying   *bool   `json:"is_studying,omitempty"`
	Description  string  `json:"description,omitempty"`
}

func EducationConvert(rec dbmodels.Education) EducationView {
	return EducationView{
		ID:           rec.ID,
		Institution:  rec.Institution,
		Degree:       rec.Degree,
		FieldOfStudy: rec.FieldOfStudy,
		StartDate:    helpers.FormatDatePtr(rec.StartDate),
		EndDate:      helpers.FormatDatePtr(rec.EndDate),
		IsStudying:   rec.IsStudying,
		Description:  rec.Description,
	}
}

type CertificateData struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	Institution    string `json:"institution"`
	DateObtained   string `json:"date_obtained"`
	ExpirationDate string `json:"expiration_date"`
}

func (d CertificateData) Validate() error {
	if d.Name == "" {
		return errors.New("certificate name is not specified")
	}
	if d.Institution == "" {
		return errors.New("issuing institution is not specified")
	}
	if _, err := helpers.ParseDatePtr(d.DateObtained); err != nil {
		return errors.New("invalid obtained date, expected format 2006-01-02")
	}
	if _, err := helpers.ParseDatePtr(d.ExpirationDate); err != nil {
		return errors.New("invalid expiration date, expected format 2006-01-02")
	}
	return nil
}

type CertificateView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Code           string  `json:"code,omitempty"`
	Institution    string  `json:"institution"`
	DateObtained   *string `json:"date_obtained"`
	ExpirationDate *string `json:"expiration_date"`
	HasFile        bool    `json:"has_file"`
}

func CertificateConvert(rec dbmodels.Certificate) CertificateView {
	return CertificateView{
		ID:             rec.ID,
		Name:           rec.Name,
		Code:           rec.Code,
		Institution:    rec.Institution,
		DateObtained:   helpers.FormatDatePtr(rec.DateObtained),
		ExpirationDate: helpers.FormatDatePtr(rec.ExpirationDate),
		HasFile:        rec.FileKey != "",
	}
}
