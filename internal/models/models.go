package models

import "strconv"

// CustomerRecord is one validated set of customer attributes. JSON names follow
// the column names the churn model was fitted on and must not be renamed.
type CustomerRecord struct {
	Gender           string  `json:"gender"`
	SeniorCitizen    int     `json:"SeniorCitizen"`
	Partner          string  `json:"Partner"`
	Dependents       string  `json:"Dependents"`
	Tenure           int     `json:"tenure"`
	PhoneService     string  `json:"PhoneService"`
	MultipleLines    string  `json:"MultipleLines"`
	InternetService  string  `json:"InternetService"`
	OnlineSecurity   string  `json:"OnlineSecurity"`
	OnlineBackup     string  `json:"OnlineBackup"`
	DeviceProtection string  `json:"DeviceProtection"`
	TechSupport      string  `json:"TechSupport"`
	StreamingTV      string  `json:"StreamingTV"`
	StreamingMovies  string  `json:"StreamingMovies"`
	Contract         string  `json:"Contract"`
	PaperlessBilling string  `json:"PaperlessBilling"`
	PaymentMethod    string  `json:"PaymentMethod"`
	MonthlyCharges   float64 `json:"MonthlyCharges"`
	Speed            float64 `json:"Speed"`
	DataAllowance    float64 `json:"DataAllowance"`
	TenureGroup      string  `json:"TenureGroup"`
}

// Columns returns the record as column name to value, keyed by model column names.
func (r CustomerRecord) Columns() map[string]any {
	return map[string]any{
		"gender":           r.Gender,
		"SeniorCitizen":    r.SeniorCitizen,
		"Partner":          r.Partner,
		"Dependents":       r.Dependents,
		"tenure":           r.Tenure,
		"PhoneService":     r.PhoneService,
		"MultipleLines":    r.MultipleLines,
		"InternetService":  r.InternetService,
		"OnlineSecurity":   r.OnlineSecurity,
		"OnlineBackup":     r.OnlineBackup,
		"DeviceProtection": r.DeviceProtection,
		"TechSupport":      r.TechSupport,
		"StreamingTV":      r.StreamingTV,
		"StreamingMovies":  r.StreamingMovies,
		"Contract":         r.Contract,
		"PaperlessBilling": r.PaperlessBilling,
		"PaymentMethod":    r.PaymentMethod,
		"MonthlyCharges":   r.MonthlyCharges,
		"Speed":            r.Speed,
		"DataAllowance":    r.DataAllowance,
		"TenureGroup":      r.TenureGroup,
	}
}

const (
	ClassChurn   = "Churn"
	ClassNoChurn = "No Churn"
)

// Probability is serialized with exactly two decimal places.
type Probability float64

func (p Probability) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 2, 64)), nil
}

type PredictionResult struct {
	ChurnProbability Probability `json:"churn_probability"`
	PredictedClass   string      `json:"predicted_class"`
}
