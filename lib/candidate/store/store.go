package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	GetByUserID(userID string) (rec *dbmodels.Candidate, err error)
	List(page, limit int) (list []dbmodels.Candidate, rowCount int64, err error)

	AddSkill(rec dbmodels.CandidateSkill) (id string, err error)
	UpdateSkill(candidateID, id string, updMap map[string]interface{}) error
	DeleteSkill(candidateID, id string) error

	AddExperience(rec dbmodels.Experience) (id string, err error)
	UpdateExperience(candidateID, id string, updMap map[string]interface{}) error
	DeleteExperience(candidateID, id string) error
	ListExperiences(candidateID string) ([]dbmodels.Experience, error)

	AddEducation(rec dbmodels.Education) (id string, err error)
	UpdateEducation(candidateID, id string, updMap map[string]interface{}) error
	DeleteEducation(candidateID, id string) error

	AddCertificate(rec dbmodels.Certificate) (id string, err error)
	UpdateCertificate(candidateID, id string, updMap map[string]interface{}) error
	DeleteCertificate(candidateID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
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
		Model(&dbmodels.Candidate{}).
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

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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

func (i impl) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Where("user_id = ?", userID).
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

func (i impl) List(page, limit int) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.
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

func (i impl) AddSkill(rec dbmodels.CandidateSkill) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateSkill(candidateID, id string, updMap map[string]interface{}) error {
	return i.updateSubRecord(&dbmodels.CandidateSkill{}, candidateID, id, updMap)
}

func (i impl) DeleteSkill(candidateID, id string) error {
	return i.deleteSubRecord(&dbmodels.CandidateSkill{}, candidateID, id)
}

func (i impl) AddExperience(rec dbmodels.Experience) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateExperience(candidateID, id string, updMap map[string]interface{}) error {
	return i.updateSubRecord(&dbmodels.Experience{}, candidateID, id, updMap)
}

func (i impl) DeleteExperience(candidateID, id string) error {
	return i.deleteSubRecord(&dbmodels.Experience{}, candidateID, id)
}

func (i impl) ListExperiences(candidateID string) (list []dbmodels.Experience, err error) {
	list = []dbmodels.Experience{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddEducation(rec dbmodels.Education) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateEducation(candidateID, id string, updMap map[string]interface{}) error {
	return i.updateSubRecord(&dbmodels.Education{}, candidateID, id, updMap)
}

func (i impl) DeleteEducation(candidateID, id string) error {
	return i.deleteSubRecord(&dbmodels.Education{}, candidateID, id)
}

func (i impl) AddCertificate(rec dbmodels.Certificate) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateCertificate(candidateID, id string, updMap map[string]interface{}) error {
	return i.updateSubRecord(&dbmodels.Certificate{}, candidateID, id, updMap)
}

func (i impl) DeleteCertificate(candidateID, id string) error {
	return i.deleteSubRecord(&dbmodels.Certificate{}, candidateID, id)
}

// updateSubRecord is scoped by candidate_id the same way deleteSubRecord is:
// a record owned by another candidate behaves as if it does not exist.
func (i impl) updateSubRecord(model interface{}, candidateID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(model).
		Where("id = ?", id).
		Where("candidate_id = ?", candidateID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) deleteSubRecord(model interface{}, candidateID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("candidate_id = ?", candidateID).
		Delete(model)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}
