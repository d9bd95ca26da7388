package scorerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	evaluationapimodels "fairhire-backend/models/api/evaluation"
)

const evaluatePath = "/api/evaluate"

type Provider interface {
	Evaluate(ctx context.Context, payload evaluationapimodels.EvaluationPayload) (*evaluationapimodels.EvaluationResponse, error)
}

func NewClient(baseURL string, timeoutSec int) Provider {
	return &impl{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

type impl struct {
	baseURL string
	client  *http.Client
}

func (i impl) Evaluate(ctx context.Context, payload evaluationapimodels.EvaluationPayload) (*evaluationapimodels.EvaluationResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "payload marshal error")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+evaluatePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "scorer request build error")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "scorer request error")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "scorer response read error")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scorer returned status %v: %v", resp.StatusCode, string(respBody))
	}
	result := evaluationapimodels.EvaluationResponse{}
	if err = json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.Wrap(err, "scorer response decode error")
	}
	return &result, nil
}
