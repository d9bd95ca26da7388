package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	reportapimodels "fairhire-backend/models/api/report"
)

type Provider interface {
	ExportAccuracyReport(list []reportapimodels.AccuracyView) (*bytes.Buffer, error)
	ExportSummaryReport(list []reportapimodels.SummaryView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var accuracyHeaders = []string{"Date", "Total CVs", "Selected CVs", "Passed final interview", "Selection accuracy (%)", "Average score"}

func (i impl) ExportAccuracyReport(list []reportapimodels.AccuracyView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, accuracyHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(accuracyHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			values := []interface{}{
				item.Date,
				item.TotalCvs,
				item.TotalCvsSelected,
				item.TotalCvsPassedEf,
				item.SelectionAccuracy,
				item.AverageScore,
			}
			if err = writeRow(f, sheet, row, values); err != nil {
				return nil, errors.Wrap(err, "xlsx data write error")
			}
		}
	}
	f.SetSheetName(sheet, "Accuracy")
	return f.WriteToBuffer()
}

var summaryHeaders = []string{"Date", "Criterion", "Protected group", "Total CVs (PG)", "Preselected (PG)", "Selection rate (PG)", "Reference group", "Total CVs (RG)", "Preselected (RG)", "Selection rate (RG)", "SPD"}

func (i impl) ExportSummaryReport(list []reportapimodels.SummaryView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			values := []interface{}{
				item.Fecha,
				item.Criterio,
				item.GrupoProtegido,
				item.TotalCvsGp,
				item.CvsPreseleccionadosGp,
				item.TasaSeleccionGp,
				item.GrupoReferente,
				item.TotalCvsGr,
				item.CvsPreseleccionadosGr,
				item.TasaSeleccionGr,
				item.Spd,
			}
			if err = writeRow(f, sheet, row, values); err != nil {
				return nil, errors.Wrap(err, "xlsx data write error")
			}
		}
	}
	f.SetSheetName(sheet, "Fairness summary")
	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}
