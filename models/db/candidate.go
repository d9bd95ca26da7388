package dbmodels

import (
	"time"

	"fairhire-backend/models"
)

type Candidate struct {
	BaseModel
	UserID         *string `gorm:"type:varchar(36);index"`
	User           *User   `gorm:"foreignKey:UserID"`
	Name           string  `gorm:"type:varchar(255)"`
	DocumentType   models.DocumentType `gorm:"type:varchar(30)"`
	DocumentNumber string              `gorm:"type:varchar(10)"`
	Country        string              `gorm:"type:varchar(100)"`
	PhotoKey       string              `gorm:"type:varchar(255)"` // object key in file storage
	Gender         string              `gorm:"type:varchar(30)"`
	BirthDate      *time.Time
	EducationLevel models.EducationLevel `gorm:"type:varchar(255)"`
	Location       string                `gorm:"type:varchar(255)"`
	ShortBio       string
	CVKey          string `gorm:"type:varchar(255)"` // object key in file storage
	LinkedinURL    string `gorm:"type:varchar(255)"`
	PortfolioURL   string `gorm:"type:varchar(255)"`
	// Cached aggregate, recomputed from Experiences. Never authoritative input.
	ExperienceYears   float64
	HasRecommendation *bool
	Availability      models.EmploymentType `gorm:"type:varchar(50)"`

	Skills       []CandidateSkill `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Experiences  []Experience     `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Educations   []Education      `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Certificates []Certificate    `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

// Age in whole years, current year minus birth year. No month correction.
func (c Candidate) Age(now time.Time) *int {
	if c.BirthDate == nil {
		return nil
	}
	age := now.Year() - c.BirthDate.Year()
	return &age
}

type CandidateSkill struct {
	BaseModel
	CandidateID      string             `gorm:"type:varchar(36);uniqueIndex:idx_candidate_skill"`
	SkillID          string             `gorm:"type:varchar(36);uniqueIndex:idx_candidate_skill"`
	Skill            *Skill             `gorm:"foreignKey:SkillID"`
	ProficiencyLevel models.Proficiency `gorm:"default:1"`
}

type Experience struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	CompanyName string `gorm:"type:varchar(255)"`
	Position    string `gorm:"type:varchar(255)"`
	StartDate   *time.Time
	EndDate     *time.Time // nil means ongoing
	Description string
}

type Education struct {
	BaseModel
	CandidateID  string `gorm:"type:varchar(36);index"`
	Institution  string `gorm:"type:varchar(255)"`
	Degree       string `gorm:"type:varchar(255)"`
	FieldOfStudy string `gorm:"type:varchar(255)"`
	StartDate    *time.Time
	EndDate      *time.Time
	IsStudying   *bool
	Description  string
}

type Certificate struct {
	BaseModel
	CandidateID    string `gorm:"type:varchar(36);index"`
	Name           string `gorm:"type:varchar(255)"`
	Code           string `gorm:"type:varchar(255)"`
	Institution    string `gorm:"type:varchar(255)"`
	DateObtained   *time.Time
	ExpirationDate *time.Time
	FileKey        string `gorm:"type:varchar(255)"` // object key in file storage
}
