package dbmodels

import (
	"time"
)

// EvaluationSummary is one fairness summary row per (date, criterion,
// protected group) produced by a single evaluation run. Summaries for an
// offer are replaced wholesale on each new run; they are a recomputed view,
// not an audit trail. Field names follow the scorer's wire contract.
type EvaluationSummary struct {
	BaseModel
	JobOfferID string    `gorm:"type:varchar(36);index"`
	JobOffer   *JobOffer `gorm:"foreignKey:JobOfferID"`

	Date               time.Time `gorm:"type:date" json:"fecha"`
	Criterion          string    `gorm:"type:varchar(100)" json:"criterio"`
	ProtectedGroup     string    `gorm:"type:varchar(100)" json:"grupo_protegido"`
	TotalCvsGp         int       `json:"total_cvs_gp"`
	PreselectedCvsGp   int       `json:"cvs_preseleccionados_gp"`
	SelectionRateGp    float64   `json:"tasa_seleccion_gp"`
	ReferenceGroup     string    `gorm:"type:varchar(100)" json:"grupo_referente"`
	TotalCvsGr         int       `json:"total_cvs_gr"`
	PreselectedCvsGr   int       `json:"cvs_preseleccionados_gr"`
	SelectionRateGr    float64   `json:"tasa_seleccion_gr"`
	Spd                float64   `json:"spd"`
}
