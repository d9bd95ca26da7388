package scorerclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	evaluationapimodels "fairhire-backend/models/api/evaluation"
)

func TestEvaluate(t *testing.T) {
	score := 62.5
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/evaluate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload evaluationapimodels.EvaluationPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Backend Developer", payload.JobTitle)
		require.Len(t, payload.Candidates, 1)

		resp := evaluationapimodels.EvaluationResponse{
			Candidates: []evaluationapimodels.CandidateResult{
				{ID: "cand-1", FairnessOverallScore: &score},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5)
	resp, err := client.Evaluate(context.Background(), evaluationapimodels.EvaluationPayload{
		JobTitle:   "Backend Developer",
		Candidates: []evaluationapimodels.CandidatePayload{{ID: "cand-1", Name: "Ana"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)
	require.Equal(t, "cand-1", resp.Candidates[0].ID)
	require.NotNil(t, resp.Candidates[0].FairnessOverallScore)
	require.Equal(t, score, *resp.Candidates[0].FairnessOverallScore)
}

func TestEvaluateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("scorer exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5)
	_, err := client.Evaluate(context.Background(), evaluationapimodels.EvaluationPayload{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestEvaluateContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Evaluate(ctx, evaluationapimodels.EvaluationPayload{})
	require.Error(t, err)
}
