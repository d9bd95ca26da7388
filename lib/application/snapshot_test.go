package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

func snapDate(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	candidate := dbmodels.Candidate{
		BaseModel:       dbmodels.BaseModel{ID: "cand-1"},
		Name:            "Ana Torres",
		Country:         "Peru",
		Gender:          "Female",
		BirthDate:       snapDate("1994-03-15"),
		EducationLevel:  models.EducationLevelBachelor,
		Location:        "Lima",
		CVKey:           "candidates/cv/cand-1/cv.pdf",
		ExperienceYears: 4.5,
		Skills: []dbmodels.CandidateSkill{
			{
				ProficiencyLevel: models.ProficiencyAdvanced,
				Skill: &dbmodels.Skill{
					Name:     "Go",
					Category: models.SkillCategoryTechnical,
				},
			},
		},
		Experiences: []dbmodels.Experience{
			{
				CompanyName: "Acme",
				Position:    "Backend Developer",
				StartDate:   snapDate("2020-01-01"),
			},
		},
	}

	raw, err := BuildSnapshot(candidate, now)
	require.NoError(t, err)

	var snapshot candidateSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	require.Equal(t, "cand-1", snapshot.CandidateID)
	require.Equal(t, "Ana Torres", snapshot.Name)
	require.NotNil(t, snapshot.BirthDate)
	require.Equal(t, "1994-03-15", *snapshot.BirthDate)
	require.Equal(t, 4.5, snapshot.ExperienceYears)
	require.Len(t, snapshot.Skills, 1)
	require.Equal(t, "Go", snapshot.Skills[0].Name)
	require.Len(t, snapshot.Experiences, 1)
	require.Nil(t, snapshot.Experiences[0].EndDate)
	require.Equal(t, now.Format(time.RFC3339), snapshot.TakenAt)
}

func TestSnapshotFrozenAgainstLaterEdits(t *testing.T) {
	now := time.Now()
	candidate := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: "cand-2"},
		Name:      "Luis Paredes",
		Location:  "Arequipa",
	}

	raw, err := BuildSnapshot(candidate, now)
	require.NoError(t, err)

	candidate.Name = "Renamed After Apply"
	candidate.Location = "Cusco"

	var snapshot candidateSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	require.Equal(t, "Luis Paredes", snapshot.Name)
	require.Equal(t, "Arequipa", snapshot.Location)
}
