package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "fairhire-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "migration error for Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Skill{}); err != nil {
		return errors.Wrap(err, "migration error for Skill")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration error for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateSkill{}); err != nil {
		return errors.Wrap(err, "migration error for CandidateSkill")
	}
	if err := DB.AutoMigrate(&dbmodels.Experience{}); err != nil {
		return errors.Wrap(err, "migration error for Experience")
	}
	if err := DB.AutoMigrate(&dbmodels.Education{}); err != nil {
		return errors.Wrap(err, "migration error for Education")
	}
	if err := DB.AutoMigrate(&dbmodels.Certificate{}); err != nil {
		return errors.Wrap(err, "migration error for Certificate")
	}
	if err := DB.AutoMigrate(&dbmodels.JobPosition{}); err != nil {
		return errors.Wrap(err, "migration error for JobPosition")
	}
	if err := DB.AutoMigrate(&dbmodels.JobOffer{}); err != nil {
		return errors.Wrap(err, "migration error for JobOffer")
	}
	if err := DB.AutoMigrate(&dbmodels.JobSkill{}); err != nil {
		return errors.Wrap(err, "migration error for JobSkill")
	}
	if err := DB.AutoMigrate(&dbmodels.JobRequirement{}); err != nil {
		return errors.Wrap(err, "migration error for JobRequirement")
	}
	if err := DB.AutoMigrate(&dbmodels.JobBenefit{}); err != nil {
		return errors.Wrap(err, "migration error for JobBenefit")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "migration error for JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationAiAnalysis{}); err != nil {
		return errors.Wrap(err, "migration error for ApplicationAiAnalysis")
	}
	if err := DB.AutoMigrate(&dbmodels.EvaluationSummary{}); err != nil {
		return errors.Wrap(err, "migration error for EvaluationSummary")
	}
	if err := DB.AutoMigrate(&dbmodels.AccuracyMetrics{}); err != nil {
		return errors.Wrap(err, "migration error for AccuracyMetrics")
	}
	if err := DB.AutoMigrate(&dbmodels.TimeMetrics{}); err != nil {
		return errors.Wrap(err, "migration error for TimeMetrics")
	}
	log.Info("migrations finished")
	return nil
}
