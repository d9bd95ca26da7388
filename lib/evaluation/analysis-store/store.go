package analysisstore

import (
	"gorm.io/gorm"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationAiAnalysis) (id string, err error)
	ListByApplication(applicationID string) ([]dbmodels.ApplicationAiAnalysis, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create appends a new analysis row. Existing rows are never touched,
// re-evaluation extends the history.
func (i impl) Create(rec dbmodels.ApplicationAiAnalysis) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ApplicationAiAnalysis, err error) {
	list = []dbmodels.ApplicationAiAnalysis{}
	err = i.db.
		Where("job_application_id = ?", applicationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
