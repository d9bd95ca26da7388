package metricsstore

import (
	"gorm.io/gorm"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeMetrics) (id string, err error)
	ListByOffer(offerID string) ([]dbmodels.TimeMetrics, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeMetrics) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByOffer(offerID string) (list []dbmodels.TimeMetrics, err error) {
	list = []dbmodels.TimeMetrics{}
	err = i.db.
		Where("job_offer_id = ?", offerID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
