package evaluation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	summarystore "fairhire-backend/lib/evaluation/summary-store"
	evaluationapimodels "fairhire-backend/models/api/evaluation"
	dbmodels "fairhire-backend/models/db"
)

type fakeSummaryStore struct {
	ops     []string
	created []dbmodels.EvaluationSummary
}

func (f *fakeSummaryStore) DeleteByOffer(offerID string) error {
	f.ops = append(f.ops, "delete:"+offerID)
	return nil
}

func (f *fakeSummaryStore) Create(rows []dbmodels.EvaluationSummary) error {
	f.ops = append(f.ops, "create")
	f.created = append(f.created, rows...)
	return nil
}

func (f *fakeSummaryStore) ListByOffer(offerID string) ([]dbmodels.EvaluationSummary, error) {
	return nil, nil
}

func (f *fakeSummaryStore) List() ([]dbmodels.EvaluationSummary, error) { return nil, nil }

func summaryHandler(fake *fakeSummaryStore) impl {
	return impl{
		txSummaryStore: func(tx *gorm.DB) summarystore.Provider { return fake },
	}
}

func TestPersistSummaries(t *testing.T) {
	const offerID = "offer-1"
	spd := 0.12

	t.Run("old rows are dropped before the new ones are written", func(t *testing.T) {
		fake := &fakeSummaryStore{}
		h := summaryHandler(fake)

		err := h.persistSummaries(nil, offerID, []evaluationapimodels.SummaryRow{
			{Fecha: "2026-08-20", Criterio: "gender", GrupoProtegido: "female",
				GrupoReferente: "male", TotalCvsGp: 4, TasaSeleccionGp: 0.5, Spd: &spd},
			{Fecha: "2026-08-21", Criterio: "age", GrupoProtegido: "over-45",
				GrupoReferente: "under-45"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"delete:" + offerID, "create"}, fake.ops)

		require.Len(t, fake.created, 2)
		first := fake.created[0]
		require.Equal(t, offerID, first.JobOfferID)
		require.Equal(t, "2026-08-20", first.Date.Format("2006-01-02"))
		require.Equal(t, "gender", first.Criterion)
		require.Equal(t, spd, first.Spd)
		require.Zero(t, fake.created[1].Spd, "missing spd defaults to zero")
	})

	t.Run("empty summary keeps the previous rows", func(t *testing.T) {
		fake := &fakeSummaryStore{}
		h := summaryHandler(fake)

		err := h.persistSummaries(nil, offerID, nil)
		require.NoError(t, err)
		require.Empty(t, fake.ops)
	})

	t.Run("an unparseable date aborts before any store call", func(t *testing.T) {
		fake := &fakeSummaryStore{}
		h := summaryHandler(fake)

		err := h.persistSummaries(nil, offerID, []evaluationapimodels.SummaryRow{
			{Fecha: "2026-08-20", Criterio: "gender"},
			{Fecha: "20/08/2026", Criterio: "age"},
		})
		require.Error(t, err)
		require.Empty(t, fake.ops)
	})
}
