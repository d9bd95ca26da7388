package candidate

import (
	"time"

	"fairhire-backend/lib/utils/helpers"
	dbmodels "fairhire-backend/models/db"
)

// CalcExperienceYears derives total years of experience from a candidate's
// experience entries. Ranges are summed, not merged, overlaps count twice.
// Entries without a start date or with an effective end before the start are
// data-entry errors and are skipped. A documented work history below one year
// still counts as one year.
func CalcExperienceYears(entries []dbmodels.Experience, today time.Time) float64 {
	totalDays := 0
	validEntries := 0

	for _, exp := range entries {
		if exp.StartDate == nil {
			continue
		}
		end := today
		if exp.EndDate != nil {
			end = *exp.EndDate
		}
		if end.Before(*exp.StartDate) {
			continue
		}
		totalDays += int(end.Sub(*exp.StartDate).Hours() / 24)
		validEntries++
	}

	if validEntries == 0 {
		return 0.0
	}
	totalYears := float64(totalDays) / 365
	if totalYears < 1 {
		totalYears = 1.0
	}
	return helpers.Round(totalYears, 1)
}
