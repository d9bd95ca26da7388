package candidate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	candidateapimodels "fairhire-backend/models/api/candidate"
	dbmodels "fairhire-backend/models/db"
)

// fakeCandidateStore keeps experience rows in memory and applies the same
// candidate_id scoping the real store applies: a row owned by another
// candidate behaves as if it does not exist.
type fakeCandidateStore struct {
	experiences    map[string]dbmodels.Experience
	profileUpdates map[string]map[string]interface{}
}

func newFakeCandidateStore() *fakeCandidateStore {
	return &fakeCandidateStore{
		experiences:    map[string]dbmodels.Experience{},
		profileUpdates: map[string]map[string]interface{}{},
	}
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) { return "", nil }

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	f.profileUpdates[id] = updMap
	return nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error)         { return nil, nil }
func (f *fakeCandidateStore) GetByUserID(userID string) (*dbmodels.Candidate, error) { return nil, nil }
func (f *fakeCandidateStore) List(page, limit int) ([]dbmodels.Candidate, int64, error) {
	return nil, 0, nil
}

func (f *fakeCandidateStore) AddSkill(rec dbmodels.CandidateSkill) (string, error) { return "", nil }
func (f *fakeCandidateStore) UpdateSkill(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeCandidateStore) DeleteSkill(candidateID, id string) error { return nil }

func (f *fakeCandidateStore) AddExperience(rec dbmodels.Experience) (string, error) {
	f.experiences[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) UpdateExperience(candidateID, id string, updMap map[string]interface{}) error {
	rec, ok := f.experiences[id]
	if !ok || rec.CandidateID != candidateID {
		return errors.New("record not found")
	}
	if v, ok := updMap["company_name"]; ok {
		rec.CompanyName = v.(string)
	}
	if v, ok := updMap["position"]; ok {
		rec.Position = v.(string)
	}
	f.experiences[id] = rec
	return nil
}

func (f *fakeCandidateStore) DeleteExperience(candidateID, id string) error {
	rec, ok := f.experiences[id]
	if !ok || rec.CandidateID != candidateID {
		return errors.New("record not found")
	}
	delete(f.experiences, id)
	return nil
}

func (f *fakeCandidateStore) ListExperiences(candidateID string) ([]dbmodels.Experience, error) {
	list := []dbmodels.Experience{}
	for _, rec := range f.experiences {
		if rec.CandidateID == candidateID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeCandidateStore) AddEducation(rec dbmodels.Education) (string, error) { return "", nil }
func (f *fakeCandidateStore) UpdateEducation(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeCandidateStore) DeleteEducation(candidateID, id string) error { return nil }

func (f *fakeCandidateStore) AddCertificate(rec dbmodels.Certificate) (string, error) {
	return "", nil
}
func (f *fakeCandidateStore) UpdateCertificate(candidateID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeCandidateStore) DeleteCertificate(candidateID, id string) error { return nil }

func TestUpdateExperienceOwnership(t *testing.T) {
	const ownerID = "owner-1"
	const expID = "exp-1"

	data := candidateapimodels.ExperienceData{
		CompanyName: "Globex",
		Position:    "Engineer",
		StartDate:   "2020-01-01",
	}

	t.Run("record owned by another candidate is untouched", func(t *testing.T) {
		fake := newFakeCandidateStore()
		fake.experiences[expID] = dbmodels.Experience{
			BaseModel:   dbmodels.BaseModel{ID: expID},
			CandidateID: ownerID,
			CompanyName: "Initech",
			Position:    "Analyst",
		}
		h := impl{store: fake}

		err := h.UpdateExperience("other-candidate", expID, data)
		require.Error(t, err)
		require.Equal(t, "Initech", fake.experiences[expID].CompanyName)
		require.Equal(t, "Analyst", fake.experiences[expID].Position)
		require.Empty(t, fake.profileUpdates, "no experience_years recalc may run on a rejected update")
	})

	t.Run("delete of a foreign record is rejected", func(t *testing.T) {
		fake := newFakeCandidateStore()
		fake.experiences[expID] = dbmodels.Experience{
			BaseModel:   dbmodels.BaseModel{ID: expID},
			CandidateID: ownerID,
		}
		h := impl{store: fake}

		err := h.DeleteExperience("other-candidate", expID)
		require.Error(t, err)
		require.Contains(t, fake.experiences, expID)
		require.Empty(t, fake.profileUpdates)
	})

	t.Run("owner update succeeds and recomputes experience years", func(t *testing.T) {
		fake := newFakeCandidateStore()
		fake.experiences[expID] = dbmodels.Experience{
			BaseModel:   dbmodels.BaseModel{ID: expID},
			CandidateID: ownerID,
			CompanyName: "Initech",
			Position:    "Analyst",
		}
		h := impl{store: fake}

		err := h.UpdateExperience(ownerID, expID, data)
		require.NoError(t, err)
		require.Equal(t, "Globex", fake.experiences[expID].CompanyName)

		updMap, ok := fake.profileUpdates[ownerID]
		require.True(t, ok, "owner profile must carry the recomputed aggregate")
		require.Contains(t, updMap, "experience_years")
	})
}
