package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/telco_churn/backend/internal/inference"
	"github.com/telco_churn/backend/internal/models"
)

// ErrInference marks a failure inside the model artifact on a valid record.
var ErrInference = errors.New("inference failure")

type InferenceError struct {
	Model string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("model %s: %s: %v", e.Model, ErrInference, e.Err)
}

func (e *InferenceError) Unwrap() []error {
	return []error{ErrInference, e.Err}
}

// Predictor turns a validated record into a PredictionResult. It keeps no
// state besides the artifact and may be shared across goroutines.
type Predictor struct {
	Model inference.Artifact
}

func NewPredictor(model inference.Artifact) *Predictor {
	return &Predictor{Model: model}
}

func (p *Predictor) Predict(ctx context.Context, rec models.CustomerRecord) (models.PredictionResult, error) {
	frame := inference.NewFrame(rec.Columns())

	probs, err := p.Model.PredictProba(ctx, frame)
	if err != nil {
		return models.PredictionResult{}, p.fail(err)
	}
	if len(probs) != 1 {
		return models.PredictionResult{}, p.fail(fmt.Errorf("predict_proba returned %d rows for 1", len(probs)))
	}
	churn := probs[0][1]
	if math.IsNaN(churn) || churn < 0 || churn > 1 {
		return models.PredictionResult{}, p.fail(fmt.Errorf("churn probability %v outside [0, 1]", churn))
	}

	labels, err := p.Model.Predict(ctx, frame)
	if err != nil {
		return models.PredictionResult{}, p.fail(err)
	}
	if len(labels) != 1 {
		return models.PredictionResult{}, p.fail(fmt.Errorf("predict returned %d labels for 1", len(labels)))
	}

	var class string
	switch labels[0] {
	case 1:
		class = models.ClassChurn
	case 0:
		class = models.ClassNoChurn
	default:
		return models.PredictionResult{}, p.fail(fmt.Errorf("unexpected class label %d", labels[0]))
	}

	return models.PredictionResult{
		ChurnProbability: models.Probability(RoundProbability(churn)),
		PredictedClass:   class,
	}, nil
}

func (p *Predictor) fail(err error) error {
	return &InferenceError{Model: p.Model.Name(), Err: err}
}

// RoundProbability rounds the exact binary value of v to two decimal places,
// so 0.015 (stored just below 0.015) becomes 0.01.
func RoundProbability(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
