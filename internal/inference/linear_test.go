package inference

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

const shippedModel = "../../models/telco_churn_model.json"

func shortTenureRow() map[string]any {
	return map[string]any{
		"gender": "Female", "SeniorCitizen": 0, "Partner": "Yes", "Dependents": "No",
		"tenure": 1, "PhoneService": "Yes", "MultipleLines": "No", "InternetService": "Fiber optic",
		"OnlineSecurity": "No", "OnlineBackup": "No", "DeviceProtection": "No", "TechSupport": "No",
		"StreamingTV": "No", "StreamingMovies": "No", "Contract": "Month-to-month",
		"PaperlessBilling": "Yes", "PaymentMethod": "Electronic check",
		"MonthlyCharges": 85.0, "Speed": 100.0, "DataAllowance": 50.0, "TenureGroup": "0-1yr",
	}
}

func longTenureRow() map[string]any {
	r := shortTenureRow()
	r["tenure"] = 72
	r["TenureGroup"] = "6+yr"
	r["Contract"] = "Two year"
	r["InternetService"] = "DSL"
	r["PaymentMethod"] = "Credit card (automatic)"
	r["OnlineSecurity"] = "Yes"
	r["TechSupport"] = "Yes"
	return r
}

func TestLoadLinearShippedModel(t *testing.T) {
	a, err := LoadLinear(shippedModel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.Name() != "telco_churn_logreg_v1" {
		t.Fatalf("unexpected name %q", a.Name())
	}
	if len(a.Features()) != 21 {
		t.Fatalf("expected 21 fitted columns, got %d", len(a.Features()))
	}
}

func TestLinearShortTenureScoresAboveLongTenure(t *testing.T) {
	a, err := LoadLinear(shippedModel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	probs, err := a.PredictProba(context.Background(), NewFrame(shortTenureRow(), longTenureRow()))
	if err != nil {
		t.Fatalf("predict_proba: %v", err)
	}
	if len(probs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(probs))
	}
	for i, p := range probs {
		if math.Abs(p[0]+p[1]-1) > 1e-12 {
			t.Fatalf("row %d probabilities do not sum to 1: %v", i, p)
		}
	}
	if probs[0][1] <= probs[1][1] {
		t.Fatalf("expected short tenure churn %v > long tenure churn %v", probs[0][1], probs[1][1])
	}

	labels, err := a.Predict(context.Background(), NewFrame(shortTenureRow(), longTenureRow()))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if labels[0] != 1 || labels[1] != 0 {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestLinearMissingColumnFailsLoudly(t *testing.T) {
	a, err := LoadLinear(shippedModel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	row := shortTenureRow()
	delete(row, "tenure")
	row["Tenure"] = 1

	_, err = a.PredictProba(context.Background(), NewFrame(row))
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if len(missing.Columns) != 1 || missing.Columns[0] != "tenure" {
		t.Fatalf("unexpected missing columns %v", missing.Columns)
	}
}

func TestLinearUnknownCategoryFails(t *testing.T) {
	a, err := LoadLinear(shippedModel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	row := shortTenureRow()
	row["Contract"] = "Three year"
	if _, err := a.Predict(context.Background(), NewFrame(row)); err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestLinearNonNumericValueFails(t *testing.T) {
	a, err := LoadLinear(shippedModel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	row := shortTenureRow()
	row["MonthlyCharges"] = "85"
	if _, err := a.PredictProba(context.Background(), NewFrame(row)); err == nil {
		t.Fatalf("expected error for string in numeric column")
	}
}

func TestLinearYAMLThresholdDecidesLabel(t *testing.T) {
	a, err := LoadLinear("testdata/small_model.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := NewFrame(map[string]any{"tenure": 5, "Contract": "Month-to-month"})
	probs, err := a.PredictProba(context.Background(), f)
	if err != nil {
		t.Fatalf("predict_proba: %v", err)
	}
	if probs[0][1] < 0.6 || probs[0][1] > 0.65 {
		t.Fatalf("unexpected probability %v", probs[0][1])
	}
	labels, err := a.Predict(context.Background(), f)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// p is above 0.5 but under the fitted 0.7 threshold
	if labels[0] != 0 {
		t.Fatalf("expected label 0, got %d", labels[0])
	}
}

func TestLoadLinearRejectsBadFiles(t *testing.T) {
	for _, path := range []string{"testdata/bad_estimator.json", "testdata/corrupt.json", "testdata/absent.json"} {
		if _, err := LoadLinear(path); err == nil {
			t.Fatalf("expected error loading %s", path)
		}
	}
}

func TestLoadWrapsArtifactLoadError(t *testing.T) {
	_, err := Load(context.Background(), Options{Path: "testdata/absent.json"})
	if !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad, got %v", err)
	}
	_, err = Load(context.Background(), Options{})
	if !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad for empty options, got %v", err)
	}
}

func TestNewFrameSortsColumns(t *testing.T) {
	f := NewFrame(map[string]any{"b": 2, "a": 1})
	if strings.Join(f.Columns, ",") != "a,b" {
		t.Fatalf("unexpected columns %v", f.Columns)
	}
	if f.Rows[0][0] != 1 || f.Rows[0][1] != 2 {
		t.Fatalf("unexpected row %v", f.Rows[0])
	}
}
