package dbmodels

import (
	"time"

	"fairhire-backend/models"
)

type JobPosition struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
}

type JobOffer struct {
	BaseModel
	Title          string `gorm:"type:varchar(255)"`
	Description    string
	JobPositionID  string       `gorm:"type:varchar(36)"`
	JobPosition    *JobPosition `gorm:"foreignKey:JobPositionID"`
	CompanyID      string       `gorm:"type:varchar(36)"`
	Company        *Company     `gorm:"foreignKey:CompanyID"`
	Location       string       `gorm:"type:varchar(255)"`
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       *bool
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	SalaryMin      *float64
	SalaryMax      *float64
	Mode           models.WorkMode `gorm:"type:varchar(50)"`
	IsUrgent       *bool

	Skills       []JobSkill       `gorm:"foreignKey:JobOfferID;constraint:OnDelete:CASCADE"`
	Requirements []JobRequirement `gorm:"foreignKey:JobOfferID;constraint:OnDelete:CASCADE"`
	Benefits     []JobBenefit     `gorm:"foreignKey:JobOfferID;constraint:OnDelete:CASCADE"`
}

type JobSkill struct {
	BaseModel
	JobOfferID string `gorm:"type:varchar(36);index"`
	SkillID    string `gorm:"type:varchar(36)"`
	Skill      *Skill `gorm:"foreignKey:SkillID"`
}

type JobRequirement struct {
	BaseModel
	JobOfferID  string `gorm:"type:varchar(36);index"`
	Description string `gorm:"type:varchar(255)"`
}

type JobBenefit struct {
	BaseModel
	JobOfferID  string `gorm:"type:varchar(36);index"`
	Description string `gorm:"type:varchar(255)"`
}
