package inference

import (
	"context"
	"sync/atomic"
)

// StaticArtifact answers every row with the same probability and label.
// Calls counts PredictProba and Predict invocations.
type StaticArtifact struct {
	ModelName   string
	Probability float64
	Label       int
	Err         error

	calls atomic.Int64
}

func (s *StaticArtifact) Name() string { return s.ModelName }

func (s *StaticArtifact) Features() []string { return nil }

func (s *StaticArtifact) Calls() int64 { return s.calls.Load() }

func (s *StaticArtifact) PredictProba(_ context.Context, f Frame) ([][2]float64, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([][2]float64, len(f.Rows))
	for i := range out {
		out[i] = [2]float64{1 - s.Probability, s.Probability}
	}
	return out, nil
}

func (s *StaticArtifact) Predict(_ context.Context, f Frame) ([]int, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]int, len(f.Rows))
	for i := range out {
		out[i] = s.Label
	}
	return out, nil
}
