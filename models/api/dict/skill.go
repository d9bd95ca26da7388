package dictapimodels

import (
	"github.com/pkg/errors"

	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

type SkillData struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    models.SkillCategory `json:"category"`
}

func (d SkillData) Validate() error {
	if d.Name == "" {
		return errors.New("skill name is not specified")
	}
	switch d.Category {
	case models.SkillCategoryTechnical, models.SkillCategorySoft,
		models.SkillCategoryLanguage, models.SkillCategoryOffice:
		return nil
	}
	return errors.New("unknown skill category")
}

type SkillView struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Category    models.SkillCategory `json:"category"`
}

func SkillConvert(rec dbmodels.Skill) SkillView {
	return SkillView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    rec.Category,
	}
}
