package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteArtifact calls a model server that hosts the serialized classifier.
type RemoteArtifact struct {
	BaseURL string
	Client  *http.Client

	name     string
	features []string
}

type metadataBody struct {
	Name         string   `json:"name"`
	FeatureNames []string `json:"feature_names"`
}

type probaBody struct {
	Probabilities [][2]float64 `json:"probabilities"`
}

type labelsBody struct {
	Labels []int `json:"labels"`
}

// LoadRemote checks that the model server answers /metadata and records the
// feature names it reports.
func LoadRemote(ctx context.Context, baseURL string, timeout time.Duration) (*RemoteArtifact, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	r := &RemoteArtifact{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}

	var meta metadataBody
	if err := r.call(ctx, http.MethodGet, "/metadata", nil, &meta); err != nil {
		return nil, err
	}
	if len(meta.FeatureNames) == 0 {
		return nil, errors.New("model server reported no feature names")
	}
	r.name = meta.Name
	r.features = meta.FeatureNames
	return r, nil
}

func (r *RemoteArtifact) Name() string { return r.name }

func (r *RemoteArtifact) Features() []string {
	out := make([]string, len(r.features))
	copy(out, r.features)
	return out
}

func (r *RemoteArtifact) PredictProba(ctx context.Context, f Frame) ([][2]float64, error) {
	if _, err := f.Require(r.features); err != nil {
		return nil, err
	}
	var body probaBody
	if err := r.call(ctx, http.MethodPost, "/predict_proba", f, &body); err != nil {
		return nil, err
	}
	if len(body.Probabilities) != len(f.Rows) {
		return nil, fmt.Errorf("model server returned %d probability rows for %d rows", len(body.Probabilities), len(f.Rows))
	}
	return body.Probabilities, nil
}

func (r *RemoteArtifact) Predict(ctx context.Context, f Frame) ([]int, error) {
	if _, err := f.Require(r.features); err != nil {
		return nil, err
	}
	var body labelsBody
	if err := r.call(ctx, http.MethodPost, "/predict", f, &body); err != nil {
		return nil, err
	}
	if len(body.Labels) != len(f.Rows) {
		return nil, fmt.Errorf("model server returned %d labels for %d rows", len(body.Labels), len(f.Rows))
	}
	return body.Labels, nil
}

func (r *RemoteArtifact) call(ctx context.Context, method, path string, payload any, out any) error {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("model server %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("model server %s %s: decode: %w", method, path, err)
	}
	return nil
}
