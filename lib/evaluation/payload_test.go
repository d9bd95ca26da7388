package evaluation

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

func payloadOffer() dbmodels.JobOffer {
	return dbmodels.JobOffer{
		BaseModel:   dbmodels.BaseModel{ID: "offer-1"},
		Title:       "Backend Developer",
		Description: "Build services",
		JobPosition: &dbmodels.JobPosition{Name: "Developer", Description: "Builds things"},
		Company:     &dbmodels.Company{Name: "Acme"},
	}
}

func payloadApp(appID, candID, name, cvKey string) dbmodels.JobApplication {
	return dbmodels.JobApplication{
		BaseModel:   dbmodels.BaseModel{ID: appID, CreatedAt: time.Now()},
		CandidateID: candID,
		Candidate: &dbmodels.Candidate{
			BaseModel: dbmodels.BaseModel{ID: candID},
			Name:      name,
			CVKey:     cvKey,
		},
	}
}

func TestBuildPayloadErrorIsolation(t *testing.T) {
	getFile := func(ctx context.Context, key string) ([]byte, error) {
		if key == "broken" {
			return nil, errors.New("object not found")
		}
		return []byte("pdf-bytes"), nil
	}
	apps := []dbmodels.JobApplication{
		payloadApp("app-1", "cand-1", "Ana", "candidates/cv/cand-1/cv.pdf"),
		payloadApp("app-2", "cand-2", "Luis", "broken"),
		payloadApp("app-3", "cand-3", "Marta", ""),
	}

	payload, errList := buildPayload(context.Background(), payloadOffer(), apps, getFile, time.Now())

	require.Len(t, payload.Candidates, 2)
	require.Len(t, errList, 1)
	require.Equal(t, "app-2", errList[0].ApplicationID)
	require.Equal(t, "Luis", errList[0].CandidateName)

	require.NotNil(t, payload.Candidates[0].CvPdfBase64)
	expected := base64.StdEncoding.EncodeToString([]byte("pdf-bytes"))
	require.Equal(t, expected, *payload.Candidates[0].CvPdfBase64)
	// Absent CV is null, not an error.
	require.Nil(t, payload.Candidates[1].CvPdfBase64)
}

func TestBuildPayloadMissingCandidateLink(t *testing.T) {
	apps := []dbmodels.JobApplication{
		{BaseModel: dbmodels.BaseModel{ID: "app-1"}},
	}
	getFile := func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("not called")
	}

	payload, errList := buildPayload(context.Background(), payloadOffer(), apps, getFile, time.Now())

	require.Empty(t, payload.Candidates)
	require.Len(t, errList, 1)
	require.Equal(t, "app-1", errList[0].ApplicationID)
}

func TestBuildCandidateEntryDetails(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1994, 12, 31, 0, 0, 0, 0, time.UTC)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	app := dbmodels.JobApplication{
		BaseModel: dbmodels.BaseModel{ID: "app-1", CreatedAt: now},
		Candidate: &dbmodels.Candidate{
			BaseModel:      dbmodels.BaseModel{ID: "cand-1"},
			Name:           "Ana",
			BirthDate:      &birth,
			EducationLevel: models.EducationLevelBachelor,
			Skills: []dbmodels.CandidateSkill{
				{
					ProficiencyLevel: models.ProficiencyAdvanced,
					Skill:            &dbmodels.Skill{Name: "Go", Category: models.SkillCategoryTechnical},
				},
				{
					ProficiencyLevel: models.ProficiencyIntermediate,
					Skill:            &dbmodels.Skill{Name: "English", Category: models.SkillCategoryLanguage},
				},
				{
					ProficiencyLevel: models.Proficiency(9),
					Skill:            &dbmodels.Skill{Name: "Excel", Category: models.SkillCategoryOffice},
				},
			},
			Experiences: []dbmodels.Experience{
				{Position: "Dev", CompanyName: "Acme", StartDate: &start, Description: ""},
			},
			Educations: []dbmodels.Education{
				{Institution: "UNI"},
				{Institution: "Second"},
			},
			Certificates: []dbmodels.Certificate{{Name: "Cert"}},
		},
	}

	getFile := func(ctx context.Context, key string) ([]byte, error) {
		return nil, errors.New("not called")
	}
	entry, err := buildCandidateEntry(context.Background(), app, getFile, now)
	require.NoError(t, err)

	require.Equal(t, []string{"Dev en Acme"}, entry.Experience)
	require.Len(t, entry.Skills, 1)
	require.Equal(t, "Technical", entry.Skills[0].Category)
	require.Len(t, entry.Languages, 1)
	require.NotNil(t, entry.Languages[0].Level)
	require.Equal(t, "Intermediate", *entry.Languages[0].Level)
	// Unknown proficiency maps to null, not an error.
	require.Len(t, entry.Ofimatic, 1)
	require.Nil(t, entry.Ofimatic[0].Level)
	require.NotNil(t, entry.UniversityName)
	require.Equal(t, "UNI", *entry.UniversityName)
	require.NotNil(t, entry.Age)
	require.Equal(t, 30, *entry.Age)
	require.Equal(t, 1, entry.CertificationsCount)
	require.Equal(t, 4.4, entry.ExperienceYears)
}
