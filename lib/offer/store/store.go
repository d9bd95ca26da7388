package offerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobOffer) (id string, err error)
	Update(id string, updMap map[string]interface{},
		skills []dbmodels.JobSkill, requirements []dbmodels.JobRequirement,
		benefits []dbmodels.JobBenefit) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.JobOffer, err error)
	List(activeOnly bool, page, limit int) (list []dbmodels.JobOffer, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create inserts the offer together with its nested skills, requirements and
// benefits in one transaction.
func (i impl) Create(rec dbmodels.JobOffer) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Update rewrites the offer row and replaces its nested collections
// wholesale inside one transaction.
func (i impl) Update(id string, updMap map[string]interface{},
	skills []dbmodels.JobSkill, requirements []dbmodels.JobRequirement,
	benefits []dbmodels.JobBenefit) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&dbmodels.JobOffer{}).
			Where("id = ?", id).
			Updates(updMap)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("record not found")
		}
		err := tx.Where("job_offer_id = ?", id).Delete(&dbmodels.JobSkill{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("job_offer_id = ?", id).Delete(&dbmodels.JobRequirement{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("job_offer_id = ?", id).Delete(&dbmodels.JobBenefit{}).Error
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			if err = tx.Create(&skills).Error; err != nil {
				return err
			}
		}
		if len(requirements) > 0 {
			if err = tx.Create(&requirements).Error; err != nil {
				return err
			}
		}
		if len(benefits) > 0 {
			if err = tx.Create(&benefits).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JobOffer{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.JobOffer, error) {
	rec := dbmodels.JobOffer{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
		Preload("Skills.Skill").
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

func (i impl) List(activeOnly bool, page, limit int) (list []dbmodels.JobOffer, rowCount int64, err error) {
	list = []dbmodels.JobOffer{}
	tx := i.db.Model(dbmodels.JobOffer{})
	if activeOnly {
		tx = tx.Where("is_active = true")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
		Preload("JobPosition").
		Preload("Company").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
