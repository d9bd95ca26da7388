package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fairhire-backend/config"
	"fairhire-backend/db"
	"fairhire-backend/lib/accuracy"
	applicationstore "fairhire-backend/lib/application/store"
	filestorage "fairhire-backend/lib/file-storage"
	offerstore "fairhire-backend/lib/offer/store"
	smtpprovider "fairhire-backend/lib/smtp"
	"fairhire-backend/lib/utils/helpers"
	initchecker "fairhire-backend/lib/utils/init-checker"
	"fairhire-backend/lib/utils/lock"
	"fairhire-backend/models"
	evaluationapimodels "fairhire-backend/models/api/evaluation"
	reportapimodels "fairhire-backend/models/api/report"
	dbmodels "fairhire-backend/models/db"

	analysisstore "fairhire-backend/lib/evaluation/analysis-store"
	metricsstore "fairhire-backend/lib/evaluation/metrics-store"
	scorerclient "fairhire-backend/lib/evaluation/scorer-client"
	summarystore "fairhire-backend/lib/evaluation/summary-store"
)

const lockWait = 3 * time.Second

var ErrRunInProgress = errors.New("evaluation for this offer is already in progress")

type Provider interface {
	EvaluateOffer(ctx context.Context, offerID string) (run evaluationapimodels.RunView, err error)
	ListSummaries(offerID string) ([]reportapimodels.SummaryView, error)
	ListAllSummaries() ([]reportapimodels.SummaryView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		offerStore:       offerstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		summaryStore:     summarystore.NewInstance(db.DB),
		txSummaryStore:   summarystore.NewInstance,
		filestorage:      filestorage.Instance,
		scorer:           scorerclient.NewClient(config.Conf.Scorer.BaseURL, config.Conf.Scorer.TimeoutSec),
		accuracy:         accuracy.Instance,
	}
	initchecker.CheckInit(
		"offerStore", instance.offerStore,
		"applicationStore", instance.applicationStore,
		"summaryStore", instance.summaryStore,
		"filestorage", instance.filestorage,
		"scorer", instance.scorer,
		"accuracy", instance.accuracy,
	)
	Instance = instance
}

type impl struct {
	offerStore       offerstore.Provider
	applicationStore applicationstore.Provider
	summaryStore     summarystore.Provider
	filestorage      filestorage.Provider
	scorer           scorerclient.Provider
	accuracy         accuracy.Provider

	// txSummaryStore binds the summary store to the run's transaction.
	txSummaryStore func(tx *gorm.DB) summarystore.Provider
}

// EvaluateOffer runs the full scoring pipeline for one offer: build the
// payload, call the external scorer, persist analyses, statuses, fairness
// summaries and time metrics in one transaction, then refresh accuracy rows
// and notify candidates. Runs for the same offer are serialized; the scorer
// failing or returning an unknown candidate id persists nothing.
func (i impl) EvaluateOffer(ctx context.Context, offerID string) (evaluationapimodels.RunView, error) {
	run := evaluationapimodels.RunView{}
	var err error
	lockKey := "offer-evaluation:" + offerID
	acquired, err := lock.WithDelay(ctx, lockKey, lockWait, func() error {
		run, err = i.evaluateOffer(ctx, offerID)
		return err
	})
	if !acquired {
		return run, ErrRunInProgress
	}
	return run, err
}

func (i impl) evaluateOffer(ctx context.Context, offerID string) (evaluationapimodels.RunView, error) {
	run := evaluationapimodels.RunView{}
	logger := log.WithField("job_offer_id", offerID)

	offer, err := i.offerStore.GetByID(offerID)
	if err != nil {
		return run, err
	}
	if offer == nil {
		return run, errors.New("job offer not found")
	}
	apps, err := i.applicationStore.ListByOfferForScoring(offerID)
	if err != nil {
		return run, err
	}
	if len(apps) == 0 {
		return run, errors.New("the offer has no applications to evaluate")
	}

	payload, errList := buildPayload(ctx, *offer, apps, i.filestorage.GetFile, time.Now())
	run.Errors = errList
	for _, item := range errList {
		logger.
			WithField("application_id", item.ApplicationID).
			Warn("candidate excluded from evaluation: " + item.Error)
	}
	if len(payload.Candidates) == 0 {
		return run, errors.New("no candidates could be included in the evaluation payload")
	}

	startedAt := time.Now()
	resp, err := i.scorer.Evaluate(ctx, payload)
	if err != nil {
		logger.WithError(err).Error("scorer request failed, nothing persisted")
		return run, err
	}
	finishedAt := time.Now()

	requestID := uuid.NewString()
	appByCandidate := make(map[string]dbmodels.JobApplication, len(apps))
	for _, app := range apps {
		appByCandidate[app.CandidateID] = app
	}

	statusByApp := map[string]models.ApplicationStatus{}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txErr := i.persistResults(tx, appByCandidate, resp.Candidates, statusByApp)
		if txErr != nil {
			return txErr
		}
		txErr = i.persistSummaries(tx, offerID, resp.SelectionSummary)
		if txErr != nil {
			return txErr
		}
		return i.persistTimeMetrics(tx, offerID, requestID, resp.Candidates,
			appByCandidate, startedAt, finishedAt)
	})
	if err != nil {
		logger.WithError(err).Error("evaluation run aborted, nothing persisted")
		return run, err
	}
	run.RequestID = requestID
	run.Evaluated = len(resp.Candidates)

	dates := make([]time.Time, 0, len(apps))
	for _, app := range apps {
		dates = append(dates, app.CreatedAt)
	}
	if err = i.accuracy.RecalcForDates(dates); err != nil {
		logger.WithError(err).Error("accuracy recalc error after evaluation run")
	}

	i.notifyCandidates(offer.Title, apps, statusByApp)
	return run, nil
}

// persistResults appends one analysis row per scorer result and moves the
// application status. A result whose candidate id matches no application in
// the run is a contract violation and aborts the transaction.
func (i impl) persistResults(tx *gorm.DB, appByCandidate map[string]dbmodels.JobApplication,
	results []evaluationapimodels.CandidateResult, statusByApp map[string]models.ApplicationStatus) error {
	analysisStore := analysisstore.NewInstance(tx)
	for _, result := range results {
		app, ok := appByCandidate[result.ID]
		if !ok {
			return fmt.Errorf("scorer returned unknown candidate id %v", result.ID)
		}
		score := 0.0
		if result.FairnessOverallScore != nil {
			score = *result.FairnessOverallScore
		}
		status := DecideStatus(score)

		rec := dbmodels.ApplicationAiAnalysis{
			JobApplicationID:        app.ID,
			JobMatchScore:           result.JobMatchScore,
			SemanticScore:           result.SemanticScore,
			StructuralScore:         result.StructuralScore,
			OverallScore:            &score,
			FairnessStructuralScore: result.FairnessStructuralScore,
			FairnessOverallScore:    result.FairnessOverallScore,
			FairnessOverallDelta:    result.FairnessOverallDelta,
			StructuralBreakdown:     datatypes.JSON(result.StructuralBreakdown),
			FairnessGroups:          datatypes.JSON(result.FairnessGroups),
			Status:                  models.AnalysisStatus(status),
			Observation:             result.DecisionLabel,
			ProcessingStartTime:     result.ProcessingStartTime,
			ProcessingEndTime:       result.ProcessingEndTime,
			ProcessingTimeSeconds:   result.ProcessingTimeSeconds,
		}
		if _, err := analysisStore.Create(rec); err != nil {
			return err
		}
		err := tx.
			Model(&dbmodels.JobApplication{}).
			Where("id = ?", app.ID).
			Update("status", status).
			Error
		if err != nil {
			return err
		}
		statusByApp[app.ID] = status
	}
	return nil
}

func (i impl) persistSummaries(tx *gorm.DB, offerID string,
	summary []evaluationapimodels.SummaryRow) error {
	if len(summary) == 0 {
		return nil
	}
	rows := make([]dbmodels.EvaluationSummary, 0, len(summary))
	for _, row := range summary {
		date, err := helpers.ParseDate(row.Fecha)
		if err != nil {
			return errors.Wrapf(err, "invalid summary date %q", row.Fecha)
		}
		spd := 0.0
		if row.Spd != nil {
			spd = *row.Spd
		}
		rows = append(rows, dbmodels.EvaluationSummary{
			JobOfferID:       offerID,
			Date:             date,
			Criterion:        row.Criterio,
			ProtectedGroup:   row.GrupoProtegido,
			TotalCvsGp:       row.TotalCvsGp,
			PreselectedCvsGp: row.CvsPreseleccionadosGp,
			SelectionRateGp:  row.TasaSeleccionGp,
			ReferenceGroup:   row.GrupoReferente,
			TotalCvsGr:       row.TotalCvsGr,
			PreselectedCvsGr: row.CvsPreseleccionadosGr,
			SelectionRateGr:  row.TasaSeleccionGr,
			Spd:              spd,
		})
	}
	summaryStore := i.txSummaryStore(tx)
	if err := summaryStore.DeleteByOffer(offerID); err != nil {
		return err
	}
	return summaryStore.Create(rows)
}

func (i impl) persistTimeMetrics(tx *gorm.DB, offerID, requestID string,
	results []evaluationapimodels.CandidateResult,
	appByCandidate map[string]dbmodels.JobApplication,
	startedAt, finishedAt time.Time) error {
	type candidateDuration struct {
		ID                    string   `json:"id"`
		Name                  string   `json:"name"`
		ProcessingTimeSeconds *float64 `json:"processing_time_seconds"`
	}
	durations := make([]candidateDuration, 0, len(results))
	for _, result := range results {
		item := candidateDuration{
			ID:                    result.ID,
			ProcessingTimeSeconds: result.ProcessingTimeSeconds,
		}
		if app, ok := appByCandidate[result.ID]; ok && app.Candidate != nil {
			item.Name = app.Candidate.Name
		}
		durations = append(durations, item)
	}
	durationsJSON, err := json.Marshal(durations)
	if err != nil {
		return errors.Wrap(err, "durations marshal error")
	}

	totalSeconds := finishedAt.Sub(startedAt).Seconds()
	perCandidate := 0.0
	if len(results) > 0 {
		perCandidate = totalSeconds / float64(len(results))
	}
	rec := dbmodels.TimeMetrics{
		JobOfferID:                 offerID,
		RequestID:                  requestID,
		CandidateCount:             len(results),
		StartedAt:                  &startedAt,
		FinishedAt:                 &finishedAt,
		ProcessingTimeSeconds:      helpers.Round(totalSeconds, 4),
		ProcessingTimePerCandidate: helpers.Round(perCandidate, 4),
		CandidateProcessingTimes:   datatypes.JSON(durationsJSON),
	}
	_, err = metricsstore.NewInstance(tx).Create(rec)
	return err
}

// notifyCandidates sends a best-effort status mail per scored application.
// Delivery failures are logged and never fail the run.
func (i impl) notifyCandidates(offerTitle string, apps []dbmodels.JobApplication,
	statusByApp map[string]models.ApplicationStatus) {
	if smtpprovider.Instance == nil {
		return
	}
	for _, app := range apps {
		status, ok := statusByApp[app.ID]
		if !ok || app.Candidate == nil || app.Candidate.User == nil {
			continue
		}
		email := app.Candidate.User.Email
		if email == "" {
			continue
		}
		message := fmt.Sprintf("Hello %s,\n\nYour application for %q has been evaluated. Current status: %s.",
			app.Candidate.Name, offerTitle, status)
		err := smtpprovider.Instance.SendEMail(config.Conf.Smtp.NotifyFrom, email,
			message, "Application status update")
		if err != nil {
			log.
				WithField("application_id", app.ID).
				WithError(err).
				Error("status notification send error")
		}
	}
}

func (i impl) ListSummaries(offerID string) ([]reportapimodels.SummaryView, error) {
	recList, err := i.summaryStore.ListByOffer(offerID)
	if err != nil {
		return nil, err
	}
	return summaryViews(recList), nil
}

func (i impl) ListAllSummaries() ([]reportapimodels.SummaryView, error) {
	recList, err := i.summaryStore.List()
	if err != nil {
		return nil, err
	}
	return summaryViews(recList), nil
}

func summaryViews(recList []dbmodels.EvaluationSummary) []reportapimodels.SummaryView {
	result := make([]reportapimodels.SummaryView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, reportapimodels.SummaryConvert(rec))
	}
	return result
}
