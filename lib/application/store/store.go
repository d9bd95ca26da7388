package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "fairhire-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	GetByCandidateAndOffer(candidateID, offerID string) (rec *dbmodels.JobApplication, err error)
	ListByOffer(offerID string) ([]dbmodels.JobApplication, error)
	// ListByOfferForScoring loads everything the payload builder needs in
	// one pass.
	ListByOfferForScoring(offerID string) ([]dbmodels.JobApplication, error)
	ListByCandidate(candidateID string) ([]dbmodels.JobApplication, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
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
		Model(&dbmodels.JobApplication{}).
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

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Where("id = ?", id).
		Preload("Candidate").
		Preload("JobOffer").
		Preload("Analyses").
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

func (i impl) GetByCandidateAndOffer(candidateID, offerID string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Where("job_offer_id = ?", offerID).
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

func (i impl) ListByOffer(offerID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Where("job_offer_id = ?", offerID).
		Preload("Candidate").
		Preload("Analyses").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByOfferForScoring(offerID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Where("job_offer_id = ?", offerID).
		Preload("Candidate").
		Preload("Candidate.User").
		Preload("Candidate.Skills.Skill").
		Preload("Candidate.Experiences").
		Preload("Candidate.Educations").
		Preload("Candidate.Certificates").
		Preload("Analyses").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Preload("JobOffer").
		Preload("Analyses").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
