package accuracystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	GetOrCreateByDate(date time.Time) (rec *dbmodels.AccuracyMetrics, err error)
	ListApplicationsByDate(date time.Time) ([]dbmodels.JobApplication, error)
	SaveMetrics(metricID string, updMap map[string]interface{}, apps []dbmodels.JobApplication) error
	List() ([]dbmodels.AccuracyMetrics, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetOrCreateByDate(date time.Time) (*dbmodels.AccuracyMetrics, error) {
	rec := dbmodels.AccuracyMetrics{}
	err := i.db.
		Where("interview_date = ?", date).
		First(&rec).
		Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rec = dbmodels.AccuracyMetrics{InterviewDate: date}
	err = i.db.Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListApplicationsByDate returns applications created on the given calendar
// date with their analyses.
func (i impl) ListApplicationsByDate(date time.Time) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Where("created_at >= ? AND created_at < ?", date, date.AddDate(0, 0, 1)).
		Preload("Analyses").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SaveMetrics writes the recomputed counters and refreshes the application
// association in one transaction.
func (i impl) SaveMetrics(metricID string, updMap map[string]interface{}, apps []dbmodels.JobApplication) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.AccuracyMetrics{}).
			Where("id = ?", metricID).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		rec := dbmodels.AccuracyMetrics{BaseModel: dbmodels.BaseModel{ID: metricID}}
		return tx.Model(&rec).Association("JobApplications").Replace(apps)
	})
}

func (i impl) List() (list []dbmodels.AccuracyMetrics, err error) {
	list = []dbmodels.AccuracyMetrics{}
	err = i.db.
		Order("interview_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
