package accuracy

import (
	"time"

	log "github.com/sirupsen/logrus"

	"fairhire-backend/db"
	store "fairhire-backend/lib/accuracy/store"
	"fairhire-backend/lib/utils/helpers"
	initchecker "fairhire-backend/lib/utils/init-checker"
	reportapimodels "fairhire-backend/models/api/report"
)

type Provider interface {
	RecalcForDate(date time.Time) error
	RecalcForDates(dates []time.Time) error
	ListReport() ([]reportapimodels.AccuracyView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

// RecalcForDate rebuilds the accuracy row for one calendar date from the
// current application state. Safe to re-run, the result depends only on the
// data, not on previous runs.
func (i impl) RecalcForDate(date time.Time) error {
	date = helpers.DateOnly(date)
	metric, err := i.store.GetOrCreateByDate(date)
	if err != nil {
		return err
	}
	apps, err := i.store.ListApplicationsByDate(date)
	if err != nil {
		return err
	}
	m := calcMetrics(apps)
	updMap := map[string]interface{}{
		"total_cvs":          m.TotalCvs,
		"total_cvs_selected": m.TotalCvsSelected,
		"total_cvs_passed_ef": m.TotalCvsPassedEf,
		"selection_accuracy": m.SelectionAccuracy,
	}
	return i.store.SaveMetrics(metric.ID, updMap, apps)
}

func (i impl) RecalcForDates(dates []time.Time) error {
	seen := map[time.Time]bool{}
	for _, date := range dates {
		date = helpers.DateOnly(date)
		if seen[date] {
			continue
		}
		seen[date] = true
		if err := i.RecalcForDate(date); err != nil {
			log.WithError(err).WithField("date", helpers.FormatDate(date)).
				Error("accuracy recalc error")
			return err
		}
	}
	return nil
}

func (i impl) ListReport() ([]reportapimodels.AccuracyView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]reportapimodels.AccuracyView, 0, len(recList))
	for _, rec := range recList {
		apps, err := i.store.ListApplicationsByDate(rec.InterviewDate)
		if err != nil {
			return nil, err
		}
		m := calcMetrics(apps)
		result = append(result, reportapimodels.AccuracyConvert(rec, m.AverageScore))
	}
	return result, nil
}
