package dbmodels

import (
	"fairhire-backend/models"
)

type Company struct {
	BaseModel
	Name      string             `gorm:"type:varchar(100);uniqueIndex"`
	LegalName string             `gorm:"type:varchar(100)"`
	TaxID     string             `gorm:"type:varchar(20)"`
	Industry  string             `gorm:"type:varchar(100)"`
	Address   string             `gorm:"type:varchar(255)"`
	Phone     string             `gorm:"type:varchar(20)"`
	Email     string             `gorm:"type:varchar(100)"`
	Size      models.CompanySize `gorm:"type:varchar(20)"`
}
