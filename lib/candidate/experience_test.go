package candidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "fairhire-backend/models/db"
)

func expDate(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestCalcExperienceYears(t *testing.T) {
	today := *expDate("2024-06-01")

	t.Run("no entries", func(t *testing.T) {
		require.Equal(t, 0.0, CalcExperienceYears(nil, today))
	})

	t.Run("only invalid entries", func(t *testing.T) {
		entries := []dbmodels.Experience{
			{StartDate: nil, EndDate: expDate("2020-01-01")},
			{StartDate: expDate("2021-01-01"), EndDate: expDate("2020-01-01")},
		}
		require.Equal(t, 0.0, CalcExperienceYears(entries, today))
	})

	t.Run("short history clamps to one year", func(t *testing.T) {
		entries := []dbmodels.Experience{
			{StartDate: expDate("2020-01-01"), EndDate: expDate("2020-07-01")},
		}
		require.Equal(t, 1.0, CalcExperienceYears(entries, today))
	})

	t.Run("two entries are summed", func(t *testing.T) {
		entries := []dbmodels.Experience{
			{StartDate: expDate("2018-01-01"), EndDate: expDate("2019-01-01")},
			{StartDate: expDate("2020-01-01"), EndDate: expDate("2021-01-01")},
		}
		require.Equal(t, 2.0, CalcExperienceYears(entries, today))
	})

	t.Run("ongoing entry runs to today", func(t *testing.T) {
		entries := []dbmodels.Experience{
			{StartDate: expDate("2021-06-01"), EndDate: nil},
		}
		require.Equal(t, 3.0, CalcExperienceYears(entries, today))
	})

	t.Run("invalid entry is skipped next to a valid one", func(t *testing.T) {
		entries := []dbmodels.Experience{
			{StartDate: expDate("2019-01-01"), EndDate: expDate("2022-01-01")},
			{StartDate: expDate("2021-01-01"), EndDate: expDate("2020-01-01")},
		}
		require.Equal(t, 3.0, CalcExperienceYears(entries, today))
	})
}
