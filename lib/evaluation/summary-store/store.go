package summarystore

import (
	"gorm.io/gorm"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	DeleteByOffer(offerID string) error
	Create(rows []dbmodels.EvaluationSummary) error
	ListByOffer(offerID string) ([]dbmodels.EvaluationSummary, error)
	List() ([]dbmodels.EvaluationSummary, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// DeleteByOffer clears the offer's summary rows. Summaries are a recomputed
// view of the last run, not an audit trail: callers delete and re-create
// inside the evaluation transaction so readers never observe an empty window.
func (i impl) DeleteByOffer(offerID string) error {
	return i.db.
		Where("job_offer_id = ?", offerID).
		Delete(&dbmodels.EvaluationSummary{}).
		Error
}

func (i impl) Create(rows []dbmodels.EvaluationSummary) error {
	if len(rows) == 0 {
		return nil
	}
	return i.db.Create(&rows).Error
}

func (i impl) ListByOffer(offerID string) (list []dbmodels.EvaluationSummary, err error) {
	list = []dbmodels.EvaluationSummary{}
	err = i.db.
		Where("job_offer_id = ?", offerID).
		Order("date desc, criterion, protected_group").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.EvaluationSummary, err error) {
	list = []dbmodels.EvaluationSummary{}
	err = i.db.
		Order("date desc, criterion, protected_group").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
