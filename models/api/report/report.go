package reportapimodels

import (
	"fairhire-backend/lib/utils/helpers"
	dbmodels "fairhire-backend/models/db"
)

type AccuracyView struct {
	Date              string  `json:"date"`
	TotalCvs          int     `json:"total_cvs"`
	TotalCvsSelected  int     `json:"total_cvs_selected"`
	TotalCvsPassedEf  int     `json:"total_cvs_passed_ef"`
	SelectionAccuracy float64 `json:"selection_accuracy"`
	// Computed on read, not persisted.
	AverageScore float64 `json:"average_score"`
}

func AccuracyConvert(rec dbmodels.AccuracyMetrics, avgScore float64) AccuracyView {
	return AccuracyView{
		Date:              helpers.FormatDate(rec.InterviewDate),
		TotalCvs:          rec.TotalCvs,
		TotalCvsSelected:  rec.TotalCvsSelected,
		TotalCvsPassedEf:  rec.TotalCvsPassedEf,
		SelectionAccuracy: rec.SelectionAccuracy,
		AverageScore:      avgScore,
	}
}

type SummaryView struct {
	Fecha                 string  `json:"fecha"`
	Criterio              string  `json:"criterio"`
	GrupoProtegido        string  `json:"grupo_protegido"`
	TotalCvsGp            int     `json:"total_cvs_gp"`
	CvsPreseleccionadosGp int     `json:"cvs_preseleccionados_gp"`
	TasaSeleccionGp       float64 `json:"tasa_seleccion_gp"`
	GrupoReferente        string  `json:"grupo_referente"`
	TotalCvsGr            int     `json:"total_cvs_gr"`
	CvsPreseleccionadosGr int     `json:"cvs_preseleccionados_gr"`
	TasaSeleccionGr       float64 `json:"tasa_seleccion_gr"`
	Spd                   float64 `json:"spd"`
}

func SummaryConvert(rec dbmodels.EvaluationSummary) SummaryView {
	return SummaryView{
		Fecha:                 helpers.FormatDate(rec.Date),
		Criterio:              rec.Criterion,
		GrupoProtegido:        rec.ProtectedGroup,
		TotalCvsGp:            rec.TotalCvsGp,
		CvsPreseleccionadosGp: rec.PreselectedCvsGp,
		TasaSeleccionGp:       rec.SelectionRateGp,
		GrupoReferente:        rec.ReferenceGroup,
		TotalCvsGr:            rec.TotalCvsGr,
		CvsPreseleccionadosGr: rec.PreselectedCvsGr,
		TasaSeleccionGr:       rec.SelectionRateGr,
		Spd:                   rec.Spd,
	}
}
