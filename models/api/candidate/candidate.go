package candidateapimodels

import (
	"github.com/pkg/errors"

	"fairhire-backend/lib/utils/helpers"
	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

type CandidateData struct {
	Name              string                `json:"name"`
	DocumentType      models.DocumentType   `json:"document_type"`
	DocumentNumber    string                `json:"document_number"`
	Country           string                `json:"country"`
	Gender            string                `json:"gender"`
	BirthDate         string                `json:"birth_date"` // 2006-01-02
	EducationLevel    models.EducationLevel `json:"education_level"`
	Location          string                `json:"location"`
	ShortBio          string                `json:"short_bio"`
	LinkedinURL       string                `json:"linkedin_url"`
	PortfolioURL      string                `json:"portfolio_url"`
	HasRecommendation *bool                 `json:"has_recommendation"`
	Availability      models.EmploymentType `json:"availability"`
}

func (d CandidateData) Validate() error {
	if d.Name == "" {
		return errors.New("candidate name is not specified")
	}
	if d.BirthDate != "" {
		if _, err := helpers.ParseDate(d.BirthDate); err != nil {
			return errors.New("invalid birth date, expected format 2006-01-02")
		}
	}
	return nil
}

type CandidateView struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	DocumentType      models.DocumentType   `json:"document_type,omitempty"`
	DocumentNumber    string                `json:"document_number,omitempty"`
	Country           string                `json:"country,omitempty"`
	Gender            string                `json:"gender,omitempty"`
	BirthDate         *string               `json:"birth_date,omitempty"`
	EducationLevel    models.EducationLevel `json:"education_level,omitempty"`
	Location          string                `json:"location,omitempty"`
	ShortBio          string                `json:"short_bio,omitempty"`
	LinkedinURL       string                `json:"linkedin_url,omitempty"`
	PortfolioURL      string                `json:"portfolio_url,omitempty"`
	ExperienceYears   float64               `json:"experience_years"`
	HasRecommendation *bool                 `json:"has_recommendation,omitempty"`
	Availability      models.EmploymentType `json:"availability,omitempty"`
	HasCV             bool                  `json:"has_cv"`

	Skills       []SkillView       `json:"skills,omitempty"`
	Experiences  []ExperienceView  `json:"experiences,omitempty"`
	Educations   []EducationView   `json:"educations,omitempty"`
	Certificates []CertificateView `json:"certificates,omitempty"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	view := CandidateView{
		ID:                rec.ID,
		Name:              rec.Name,
		DocumentType:      rec.DocumentType,
		DocumentNumber:    rec.DocumentNumber,
		Country:           rec.Country,
		Gender:            rec.Gender,
		BirthDate:         helpers.FormatDatePtr(rec.BirthDate),
		EducationLevel:    rec.EducationLevel,
		Location:          rec.Location,
		ShortBio:          rec.ShortBio,
		LinkedinURL:       rec.LinkedinURL,
		PortfolioURL:      rec.PortfolioURL,
		ExperienceYears:   rec.ExperienceYears,
		HasRecommendation: rec.HasRecommendation,
		Availability:      rec.Availability,
		HasCV:             rec.CVKey != "",
	}
	for _, skill := range rec.Skills {
		view.Skills = append(view.Skills, SkillConvert(skill))
	}
	for _, exp := range rec.Experiences {
		view.Experiences = append(view.Experiences, ExperienceConvert(exp))
	}
	for _, edu := range rec.Educations {
		view.Educations = append(view.Educations, EducationConvert(edu))
	}
	for _, cert := range rec.Certificates {
		view.Certificates = append(view.Certificates, CertificateConvert(cert))
	}
	return view
}
