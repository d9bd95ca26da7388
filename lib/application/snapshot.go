package application

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"fairhire-backend/lib/utils/helpers"
	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

// candidateSnapshot is the frozen profile written into an application at first
// save. It is self-contained: reading it later must not require the candidate
// row or any dictionary lookup.
type candidateSnapshot struct {
	CandidateID       string                `json:"candidate_id"`
	Name              string                `json:"name"`
	DocumentType      models.DocumentType   `json:"document_type,omitempty"`
	DocumentNumber    string                `json:"document_number,omitempty"`
	Country           string                `json:"country,omitempty"`
	Gender            string                `json:"gender,omitempty"`
	BirthDate         *string               `json:"birth_date,omitempty"`
	EducationLevel    models.EducationLevel `json:"education_level,omitempty"`
	Location          string                `json:"location,omitempty"`
	ShortBio          string                `json:"short_bio,omitempty"`
	CVKey             string                `json:"cv_key,omitempty"`
	LinkedinURL       string                `json:"linkedin_url,omitempty"`
	PortfolioURL      string                `json:"portfolio_url,omitempty"`
	ExperienceYears   float64               `json:"experience_years"`
	HasRecommendation *bool                 `json:"has_recommendation,omitempty"`
	Availability      models.EmploymentType `json:"availability,omitempty"`
	TakenAt           string                `json:"taken_at"`

	Skills       []snapshotSkill       `json:"skills"`
	Experiences  []snapshotExperience  `json:"experiences"`
	Educations   []snapshotEducation   `json:"educations"`
	Certificates []snapshotCertificate `json:"certificates"`
}

type snapshotSkill struct {
	Name             string               `json:"name"`
	Category         models.SkillCategory `json:"category"`
	ProficiencyLevel models.Proficiency   `json:"proficiency_level"`
}

type snapshotExperience struct {
	CompanyName string  `json:"company_name"`
	Position    string  `json:"position"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description,omitempty"`
}

type snapshotEducation struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"field_of_study,omitempty"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsStudying   *bool   `json:"is_studying,omitempty"`
}

type snapshotCertificate struct {
	Name           string  `json:"name"`
	Code           string  `json:"code,omitempty"`
	Institution    string  `json:"institution"`
	DateObtained   *string `json:"date_obtained"`
	ExpirationDate *string `json:"expiration_date"`
}

// BuildSnapshot freezes the candidate profile for audit purposes. Associations
// must be preloaded on rec.
func BuildSnapshot(rec dbmodels.Candidate, now time.Time) (datatypes.JSON, error) {
	snapshot := candidateSnapshot{
		CandidateID:       rec.ID,
		Name:              rec.Name,
		DocumentType:      rec.DocumentType,
		DocumentNumber:    rec.DocumentNumber,
		Country:           rec.Country,
		Gender:            rec.Gender,
		BirthDate:         helpers.FormatDatePtr(rec.BirthDate),
		EducationLevel:    rec.EducationLevel,
		Location:          rec.Location,
		ShortBio:          rec.ShortBio,
		CVKey:             rec.CVKey,
		LinkedinURL:       rec.LinkedinURL,
		PortfolioURL:      rec.PortfolioURL,
		ExperienceYears:   rec.ExperienceYears,
		HasRecommendation: rec.HasRecommendation,
		Availability:      rec.Availability,
		TakenAt:           now.Format(time.RFC3339),
		Skills:            []snapshotSkill{},
		Experiences:       []snapshotExperience{},
		Educations:        []snapshotEducation{},
		Certificates:      []snapshotCertificate{},
	}
	for _, skill := range rec.Skills {
		item := snapshotSkill{
			ProficiencyLevel: skill.ProficiencyLevel,
		}
		if skill.Skill != nil {
			item.Name = skill.Skill.Name
			item.Category = skill.Skill.Category
		}
		snapshot.Skills = append(snapshot.Skills, item)
	}
	for _, exp := range rec.Experiences {
		snapshot.Experiences = append(snapshot.Experiences, snapshotExperience{
			CompanyName: exp.CompanyName,
			Position:    exp.Position,
			StartDate:   helpers.FormatDatePtr(exp.StartDate),
			EndDate:     helpers.FormatDatePtr(exp.EndDate),
			Description: exp.Description,
		})
	}
	for _, edu := range rec.Educations {
		snapshot.Educations = append(snapshot.Educations, snapshotEducation{
			Institution:  edu.Institution,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    helpers.FormatDatePtr(edu.StartDate),
			EndDate:      helpers.FormatDatePtr(edu.EndDate),
			IsStudying:   edu.IsStudying,
		})
	}
	for _, cert := range rec.Certificates {
		snapshot.Certificates = append(snapshot.Certificates, snapshotCertificate{
			Name:           cert.Name,
			Code:           cert.Code,
			Institution:    cert.Institution,
			DateObtained:   helpers.FormatDatePtr(cert.DateObtained),
			ExpirationDate: helpers.FormatDatePtr(cert.ExpirationDate),
		})
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot marshal error")
	}
	return datatypes.JSON(data), nil
}
