package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

const estimatorLogisticRegression = "logistic_regression"

// LinearArtifact is a fitted logistic-regression pipeline: standardized
// numeric columns and one-hot categorical columns feeding a single logit.
type LinearArtifact struct {
	ModelName   string            `json:"name" yaml:"name"`
	Estimator   string            `json:"estimator" yaml:"estimator"`
	Intercept   float64           `json:"intercept" yaml:"intercept"`
	Threshold   float64           `json:"threshold" yaml:"threshold"`
	Numeric     []NumericTerm     `json:"numeric" yaml:"numeric"`
	Categorical []CategoricalTerm `json:"categorical" yaml:"categorical"`
}

type NumericTerm struct {
	Column string  `json:"column" yaml:"column"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Weight float64 `json:"weight" yaml:"weight"`
}

type CategoricalTerm struct {
	Column  string             `json:"column" yaml:"column"`
	Weights map[string]float64 `json:"weights" yaml:"weights"`
}

// LoadLinear reads a LinearArtifact from a .json, .yaml or .yml file.
func LoadLinear(path string) (*LinearArtifact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a LinearArtifact
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(b, &a)
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&a)
	}
	if err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := a.check(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *LinearArtifact) check() error {
	if a.Estimator != estimatorLogisticRegression {
		return fmt.Errorf("unsupported estimator %q", a.Estimator)
	}
	if a.Threshold <= 0 || a.Threshold >= 1 {
		return fmt.Errorf("threshold %v outside (0, 1)", a.Threshold)
	}
	if len(a.Numeric)+len(a.Categorical) == 0 {
		return errors.New("artifact has no terms")
	}
	seen := map[string]bool{}
	for _, t := range a.Numeric {
		if t.Scale == 0 {
			return fmt.Errorf("numeric column %s has zero scale", t.Column)
		}
		if seen[t.Column] {
			return fmt.Errorf("column %s fitted twice", t.Column)
		}
		seen[t.Column] = true
	}
	for _, t := range a.Categorical {
		if len(t.Weights) == 0 {
			return fmt.Errorf("categorical column %s has no categories", t.Column)
		}
		if seen[t.Column] {
			return fmt.Errorf("column %s fitted twice", t.Column)
		}
		seen[t.Column] = true
	}
	return nil
}

func (a *LinearArtifact) Name() string { return a.ModelName }

func (a *LinearArtifact) Features() []string {
	out := make([]string, 0, len(a.Numeric)+len(a.Categorical))
	for _, t := range a.Numeric {
		out = append(out, t.Column)
	}
	for _, t := range a.Categorical {
		out = append(out, t.Column)
	}
	return out
}

func (a *LinearArtifact) PredictProba(_ context.Context, f Frame) ([][2]float64, error) {
	ps, err := a.probabilities(f)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, len(ps))
	for i, p := range ps {
		out[i] = [2]float64{1 - p, p}
	}
	return out, nil
}

func (a *LinearArtifact) Predict(_ context.Context, f Frame) ([]int, error) {
	ps, err := a.probabilities(f)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ps))
	for i, p := range ps {
		if p >= a.Threshold {
			out[i] = 1
		}
	}
	return out, nil
}

func (a *LinearArtifact) probabilities(f Frame) ([]float64, error) {
	idx, err := f.Require(a.Features())
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		if len(row) != len(f.Columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", i, len(row), len(f.Columns))
		}
		z := a.Intercept
		for _, t := range a.Numeric {
			x, ok := asFloat(row[idx[t.Column]])
			if !ok {
				return nil, fmt.Errorf("row %d: column %s: non-numeric value %v", i, t.Column, row[idx[t.Column]])
			}
			z += t.Weight * (x - t.Mean) / t.Scale
		}
		for _, t := range a.Categorical {
			key, ok := asCategory(row[idx[t.Column]])
			if !ok {
				return nil, fmt.Errorf("row %d: column %s: non-categorical value %v", i, t.Column, row[idx[t.Column]])
			}
			w, ok := t.Weights[key]
			if !ok {
				return nil, fmt.Errorf("row %d: column %s: found unknown category %q", i, t.Column, key)
			}
			z += w
		}
		out[i] = 1 / (1 + math.Exp(-z))
	}
	return out, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asCategory(v any) (string, bool) {
	switch c := v.(type) {
	case string:
		return c, true
	case int, int64:
		return fmt.Sprint(c), true
	}
	return "", false
}
