package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fairhire-backend/models"
	applicationapimodels "fairhire-backend/models/api/application"
	reportapimodels "fairhire-backend/models/api/report"
	dbmodels "fairhire-backend/models/db"
)

type fakeApplicationStore struct {
	existing map[string]dbmodels.JobApplication // candidateID|offerID -> row
	created  []dbmodels.JobApplication
}

func appKey(candidateID, offerID string) string { return candidateID + "|" + offerID }

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	f.created = append(f.created, rec)
	return "new-app-1", nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) GetByCandidateAndOffer(candidateID, offerID string) (*dbmodels.JobApplication, error) {
	if rec, ok := f.existing[appKey(candidateID, offerID)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeApplicationStore) ListByOffer(offerID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}
func (f *fakeApplicationStore) ListByOfferForScoring(offerID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}
func (f *fakeApplicationStore) ListByCandidate(candidateID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

type fakeProfileStore struct {
	candidates map[string]dbmodels.Candidate
}

func (f *fakeProfileStore) Create(rec dbmodels.Candidate) (string, error)          { return "", nil }
func (f *fakeProfileStore) Update(id string, updMap map[string]interface{}) error  { return nil }
func (f *fakeProfileStore) GetByUserID(userID string) (*dbmodels.Candidate, error) { return nil, nil }

func (f *fakeProfileStore) List(page, limit int) ([]dbmodels.Candidate, int64, error) {
	return nil, 0, nil
}

func (f *fakeProfileStore) GetByID(id string) (*dbmodels.Candidate, error) {
	if rec, ok := f.candidates[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeProfileStore) AddSkill(rec dbmodels.CandidateSkill) (string, error) { return "", nil }
func (f *fakeProfileStore) UpdateSkill(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeProfileStore) DeleteSkill(candidateID, id string) error              { return nil }
func (f *fakeProfileStore) AddExperience(rec dbmodels.Experience) (string, error) { return "", nil }
func (f *fakeProfileStore) UpdateExperience(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeProfileStore) DeleteExperience(candidateID, id string) error { return nil }
func (f *fakeProfileStore) ListExperiences(candidateID string) ([]dbmodels.Experience, error) {
	return nil, nil
}
func (f *fakeProfileStore) AddEducation(rec dbmodels.Education) (string, error) { return "", nil }
func (f *fakeProfileStore) UpdateEducation(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeProfileStore) DeleteEducation(candidateID, id string) error { return nil }

func (f *fakeProfileStore) AddCertificate(rec dbmodels.Certificate) (string, error) {
	return "", nil
}
func (f *fakeProfileStore) UpdateCertificate(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeProfileStore) DeleteCertificate(candidateID, id string) error { return nil }

type fakeOfferStore struct {
	offers map[string]dbmodels.JobOffer
}

func (f *fakeOfferStore) Create(rec dbmodels.JobOffer) (string, error) { return "", nil }
func (f *fakeOfferStore) Update(id string, updMap map[string]interface{},
	skills []dbmodels.JobSkill, requirements []dbmodels.JobRequirement,
	benefits []dbmodels.JobBenefit) error {
	return nil
}
func (f *fakeOfferStore) Delete(id string) error { return nil }
func (f *fakeOfferStore) GetByID(id string) (*dbmodels.JobOffer, error) {
	if rec, ok := f.offers[id]; ok {
		return &rec, nil
	}
	return nil, nil
}
func (f *fakeOfferStore) List(activeOnly bool, page, limit int) ([]dbmodels.JobOffer, int64, error) {
	return nil, 0, nil
}

type fakeAccuracy struct {
	recalcDates []time.Time
}

func (f *fakeAccuracy) RecalcForDate(date time.Time) error {
	f.recalcDates = append(f.recalcDates, date)
	return nil
}

func (f *fakeAccuracy) RecalcForDates(dates []time.Time) error { return nil }

func (f *fakeAccuracy) ListReport() ([]reportapimodels.AccuracyView, error) { return nil, nil }

func TestCreateApplication(t *testing.T) {
	const candidateID = "cand-1"
	const offerID = "offer-1"
	active := true

	newHandler := func() (impl, *fakeApplicationStore, *fakeAccuracy) {
		appStore := &fakeApplicationStore{existing: map[string]dbmodels.JobApplication{}}
		acc := &fakeAccuracy{}
		h := impl{
			store: appStore,
			candidateStore: &fakeProfileStore{candidates: map[string]dbmodels.Candidate{
				candidateID: {
					BaseModel: dbmodels.BaseModel{ID: candidateID},
					Name:      "Ada",
				},
			}},
			offerStore: &fakeOfferStore{offers: map[string]dbmodels.JobOffer{
				offerID: {
					BaseModel: dbmodels.BaseModel{ID: offerID},
					Title:     "Backend engineer",
					IsActive:  &active,
				},
			}},
			accuracy: acc,
		}
		return h, appStore, acc
	}

	data := applicationapimodels.ApplicationData{JobOfferID: offerID}

	t.Run("first application is created with a frozen snapshot", func(t *testing.T) {
		h, appStore, acc := newHandler()
		id, err := h.Create(candidateID, data)
		require.NoError(t, err)
		require.Equal(t, "new-app-1", id)
		require.Len(t, appStore.created, 1)

		rec := appStore.created[0]
		require.Equal(t, candidateID, rec.CandidateID)
		require.Equal(t, offerID, rec.JobOfferID)
		require.Equal(t, models.ApplicationStatusSent, rec.Status)
		require.Equal(t, models.InterviewStatusPending, rec.StatusInterview)
		require.True(t, rec.HasSnapshot)
		require.NotEmpty(t, rec.CandidateSnapshot)
		require.Len(t, acc.recalcDates, 1)
	})

	t.Run("second application for the same offer is rejected", func(t *testing.T) {
		h, appStore, acc := newHandler()
		appStore.existing[appKey(candidateID, offerID)] = dbmodels.JobApplication{
			BaseModel:   dbmodels.BaseModel{ID: "app-1"},
			CandidateID: candidateID,
			JobOfferID:  offerID,
		}

		_, err := h.Create(candidateID, data)
		require.ErrorIs(t, err, ErrDuplicateApplication)
		require.Empty(t, appStore.created, "no second record may be written")
		require.Empty(t, acc.recalcDates)
	})

	t.Run("inactive offer is rejected before any write", func(t *testing.T) {
		h, appStore, _ := newHandler()
		inactive := false
		store := h.offerStore.(*fakeOfferStore)
		offer := store.offers[offerID]
		offer.IsActive = &inactive
		store.offers[offerID] = offer

		_, err := h.Create(candidateID, data)
		require.Error(t, err)
		require.Empty(t, appStore.created)
	})
}
