package accuracy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fairhire-backend/models"
	dbmodels "fairhire-backend/models/db"
)

func scorePtr(v float64) *float64 {
	return &v
}

func analysisAt(status models.AnalysisStatus, score *float64, createdAt time.Time) dbmodels.ApplicationAiAnalysis {
	return dbmodels.ApplicationAiAnalysis{
		BaseModel:    dbmodels.BaseModel{CreatedAt: createdAt},
		Status:       status,
		OverallScore: score,
	}
}

func TestCalcMetrics(t *testing.T) {
	now := time.Now()

	t.Run("empty date", func(t *testing.T) {
		m := calcMetrics(nil)
		require.Equal(t, 0, m.TotalCvs)
		require.Equal(t, 0.0, m.SelectionAccuracy)
		require.Equal(t, 0.0, m.AverageScore)
	})

	t.Run("zero selected does not divide", func(t *testing.T) {
		apps := []dbmodels.JobApplication{
			{
				StatusInterview: models.InterviewStatusHired,
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusRejected, scorePtr(40), now),
				},
			},
		}
		m := calcMetrics(apps)
		require.Equal(t, 1, m.TotalCvs)
		require.Equal(t, 0, m.TotalCvsSelected)
		require.Equal(t, 1, m.TotalCvsPassedEf)
		require.Equal(t, 0.0, m.SelectionAccuracy)
	})

	t.Run("selection accuracy is passed over selected", func(t *testing.T) {
		apps := []dbmodels.JobApplication{
			{
				StatusInterview: models.InterviewStatusPassed,
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusApproved, scorePtr(80), now),
				},
			},
			{
				StatusInterview: models.InterviewStatusFailed,
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusApproved, scorePtr(60), now),
				},
			},
			{
				StatusInterview: models.InterviewStatusHired,
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusApproved, scorePtr(90), now),
				},
			},
		}
		m := calcMetrics(apps)
		require.Equal(t, 3, m.TotalCvs)
		require.Equal(t, 3, m.TotalCvsSelected)
		require.Equal(t, 2, m.TotalCvsPassedEf)
		require.Equal(t, 66.667, m.SelectionAccuracy)
		require.InDelta(t, 76.667, m.AverageScore, 0.001)
	})

	t.Run("only latest analysis feeds the average", func(t *testing.T) {
		apps := []dbmodels.JobApplication{
			{
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusRejected, scorePtr(30), now.Add(-time.Hour)),
					analysisAt(models.AnalysisStatusApproved, scorePtr(70), now),
				},
			},
		}
		m := calcMetrics(apps)
		require.Equal(t, 1, m.TotalCvsSelected)
		require.Equal(t, 70.0, m.AverageScore)
	})

	t.Run("idempotent over identical input", func(t *testing.T) {
		apps := []dbmodels.JobApplication{
			{
				StatusInterview: models.InterviewStatusHired,
				Analyses: []dbmodels.ApplicationAiAnalysis{
					analysisAt(models.AnalysisStatusApproved, scorePtr(77.5), now),
				},
			},
			{
				StatusInterview: models.InterviewStatusPending,
			},
		}
		first := calcMetrics(apps)
		second := calcMetrics(apps)
		require.Equal(t, first, second)
	})
}
