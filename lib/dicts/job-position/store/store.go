package jobpositionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobPosition) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.JobPosition, err error)
	List(search string) ([]dbmodels.JobPosition, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPosition) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobPosition{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JobPosition{}).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.JobPosition, error) {
	rec := dbmodels.JobPosition{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(search string) (list []dbmodels.JobPosition, err error) {
	list = []dbmodels.JobPosition{}
	tx := i.db.
		Model(dbmodels.JobPosition{})
	if search != "" {
		tx.Where("LOWER(name) like ?", "%"+search+"%")
	}
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
