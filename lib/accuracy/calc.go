package accuracy

import (
	"fairhire-backend/lib/utils/helpers"
	dbmodels "fairhire-backend/models/db"
)

// Metrics is the recomputed state of one accuracy row. AverageScore is
// reported but never persisted, the schema has no field for it.
type Metrics struct {
	TotalCvs          int
	TotalCvsSelected  int
	TotalCvsPassedEf  int
	SelectionAccuracy float64
	AverageScore      float64
}

// calcMetrics derives the metrics from the current application state. It is a
// pure function: running it twice over the same rows yields identical output.
// Analyses must be preloaded on every application.
func calcMetrics(apps []dbmodels.JobApplication) Metrics {
	m := Metrics{
		TotalCvs: len(apps),
	}
	scoreSum := 0.0
	scoreCount := 0
	for _, app := range apps {
		if app.HasApprovedAnalysis() {
			m.TotalCvsSelected++
		}
		if app.PassedFinalInterview() {
			m.TotalCvsPassedEf++
		}
		if latest := app.LatestAnalysis(); latest != nil && latest.OverallScore != nil {
			scoreSum += *latest.OverallScore
			scoreCount++
		}
	}
	if m.TotalCvsSelected > 0 {
		m.SelectionAccuracy = helpers.Round(
			float64(m.TotalCvsPassedEf)/float64(m.TotalCvsSelected)*100, 3)
	}
	if scoreCount > 0 {
		m.AverageScore = helpers.Round(scoreSum/float64(scoreCount), 3)
	}
	return m
}
