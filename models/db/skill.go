package dbmodels

import (
	"fairhire-backend/models"
)

type Skill struct {
	BaseModel
	Name        string               `gorm:"type:varchar(100);uniqueIndex"`
	Description string               `gorm:"type:varchar(300)"`
	Category    models.SkillCategory `gorm:"type:varchar(20);index"`
}
