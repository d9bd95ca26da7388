package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	evaluationhandler "fairhire-backend/lib/evaluation"
	evaluationapimodels "fairhire-backend/models/api/evaluation"
	reportapimodels "fairhire-backend/models/api/report"
)

type fakeEvaluationHandler struct {
	run evaluationapimodels.RunView
	err error
}

func (f fakeEvaluationHandler) EvaluateOffer(ctx context.Context, offerID string) (evaluationapimodels.RunView, error) {
	return f.run, f.err
}

func (f fakeEvaluationHandler) ListSummaries(offerID string) ([]reportapimodels.SummaryView, error) {
	return nil, nil
}

func (f fakeEvaluationHandler) ListAllSummaries() ([]reportapimodels.SummaryView, error) {
	return nil, nil
}

func TestRunErrorResponseCarriesExclusions(t *testing.T) {
	prev := evaluationhandler.Instance
	defer func() { evaluationhandler.Instance = prev }()
	evaluationhandler.Instance = fakeEvaluationHandler{
		run: evaluationapimodels.RunView{
			Errors: []evaluationapimodels.CandidateError{
				{ApplicationID: "app-1", CandidateName: "Ana", Error: "candidate has no CV uploaded"},
			},
		},
		err: errors.New("no candidates could be included in the evaluation payload"),
	}

	app := fiber.New()
	controller := evaluationApiController{}
	app.Post("/evaluation/offer/:offer_id/run", controller.run)

	req := httptest.NewRequest(fiber.MethodPost,
		"/evaluation/offer/8e7b2f1c-9f1d-4c5a-8a46-2f63c1a9d011/run", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Status  string                               `json:"status"`
		Message string                               `json:"message"`
		Data    []evaluationapimodels.CandidateError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "fail", body.Status)
	require.Equal(t, "Evaluation run error", body.Message)
	require.Len(t, body.Data, 1)
	require.Equal(t, "app-1", body.Data[0].ApplicationID)
	require.Equal(t, "candidate has no CV uploaded", body.Data[0].Error)
}
