package application

import (
	"time"

	"github.com/pkg/errors"

	"fairhire-backend/db"
	"fairhire-backend/lib/accuracy"
	candidatestore "fairhire-backend/lib/candidate/store"
	offerstore "fairhire-backend/lib/offer/store"
	initchecker "fairhire-backend/lib/utils/init-checker"
	applicationapimodels "fairhire-backend/models/api/application"
	dbmodels "fairhire-backend/models/db"

	store "fairhire-backend/lib/application/store"

	"fairhire-backend/models"
)

var ErrDuplicateApplication = errors.New("application for this offer already exists")

type Provider interface {
	Create(candidateID string, data applicationapimodels.ApplicationData) (id string, err error)
	Get(id string) (item applicationapimodels.ApplicationView, err error)
	ListByOffer(offerID string) ([]applicationapimodels.ApplicationView, error)
	ListByCandidate(candidateID string) ([]applicationapimodels.ApplicationView, error)
	UpdateInterviewStatus(id string, data applicationapimodels.InterviewStatusData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          store.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		offerStore:     offerstore.NewInstance(db.DB),
		accuracy:       accuracy.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
		"offerStore", instance.offerStore,
		"accuracy", instance.accuracy,
	)
	Instance = instance
}

type impl struct {
	store          store.Provider
	candidateStore candidatestore.Provider
	offerStore     offerstore.Provider
	accuracy       accuracy.Provider
}

// Create files a new application and freezes the candidate profile into it.
// A candidate applies to an offer at most once.
func (i impl) Create(candidateID string, data applicationapimodels.ApplicationData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	existing, err := i.store.GetByCandidateAndOffer(candidateID, data.JobOfferID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateApplication
	}
	offer, err := i.offerStore.GetByID(data.JobOfferID)
	if err != nil {
		return "", err
	}
	if offer == nil {
		return "", errors.New("job offer not found")
	}
	if offer.IsActive != nil && !*offer.IsActive {
		return "", errors.New("job offer is not active")
	}
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", errors.New("candidate not found")
	}
	snapshot, err := BuildSnapshot(*candidate, time.Now())
	if err != nil {
		return "", err
	}
	rec := dbmodels.JobApplication{
		CandidateID:       candidateID,
		JobOfferID:        data.JobOfferID,
		Status:            models.ApplicationStatusSent,
		StatusInterview:   models.InterviewStatusPending,
		CandidateSnapshot: snapshot,
		HasSnapshot:       true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	return id, i.accuracy.RecalcForDate(time.Now())
}

func (i impl) Get(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.New("application not found")
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) ListByOffer(offerID string) ([]applicationapimodels.ApplicationView, error) {
	recList, err := i.store.ListByOffer(offerID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) ListByCandidate(candidateID string) ([]applicationapimodels.ApplicationView, error) {
	recList, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) UpdateInterviewStatus(id string, data applicationapimodels.InterviewStatusData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("application not found")
	}
	err = i.store.Update(id, map[string]interface{}{"status_interview": data.Status})
	if err != nil {
		return err
	}
	return i.accuracy.RecalcForDate(rec.CreatedAt)
}
