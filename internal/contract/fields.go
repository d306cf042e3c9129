package contract

import (
	"fmt"
	"strings"

	"github.com/telco_churn/backend/internal/models"
)

type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
)

// Field describes one accepted input attribute. Enum holds strings for
// KindString and ints for KindInteger; Min and Max bound numeric fields.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Enum    []any    `json:"enum,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Default any      `json:"default"`
	Help    string   `json:"help,omitempty"`

	set func(r *models.CustomerRecord, v any)
}

// Categorical reports whether the field takes one of a fixed set of values.
func (f Field) Categorical() bool {
	return len(f.Enum) > 0
}

var (
	yesNo         = oneOf("Yes", "No")
	internetAddOn = oneOf("Yes", "No", "No internet service")
)

var fields = []Field{
	{Name: "gender", Label: "Gender", Kind: KindString, Enum: oneOf("Male", "Female"),
		set: func(r *models.CustomerRecord, v any) { r.Gender = v.(string) }},
	{Name: "SeniorCitizen", Label: "Senior Citizen", Kind: KindInteger, Enum: []any{0, 1},
		Help: "1 if customer is senior citizen, else 0",
		set:  func(r *models.CustomerRecord, v any) { r.SeniorCitizen = v.(int) }},
	{Name: "Partner", Label: "Partner", Kind: KindString, Enum: yesNo,
		set: func(r *models.CustomerRecord, v any) { r.Partner = v.(string) }},
	{Name: "Dependents", Label: "Dependents", Kind: KindString, Enum: yesNo,
		set: func(r *models.CustomerRecord, v any) { r.Dependents = v.(string) }},
	{Name: "tenure", Label: "Tenure (months)", Kind: KindInteger, Min: bound(0), Max: bound(100), Default: 12,
		set: func(r *models.CustomerRecord, v any) { r.Tenure = v.(int) }},
	{Name: "PhoneService", Label: "Phone Service", Kind: KindString, Enum: yesNo,
		set: func(r *models.CustomerRecord, v any) { r.PhoneService = v.(string) }},
	{Name: "MultipleLines", Label: "Multiple Lines", Kind: KindString, Enum: oneOf("Yes", "No", "No phone service"),
		set: func(r *models.CustomerRecord, v any) { r.MultipleLines = v.(string) }},
	{Name: "InternetService", Label: "Internet Service", Kind: KindString, Enum: oneOf("DSL", "Fiber optic", "No"),
		set: func(r *models.CustomerRecord, v any) { r.InternetService = v.(string) }},
	{Name: "OnlineSecurity", Label: "Online Security", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.OnlineSecurity = v.(string) }},
	{Name: "OnlineBackup", Label: "Online Backup", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.OnlineBackup = v.(string) }},
	{Name: "DeviceProtection", Label: "Device Protection", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.DeviceProtection = v.(string) }},
	{Name: "TechSupport", Label: "Tech Support", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.TechSupport = v.(string) }},
	{Name: "StreamingTV", Label: "Streaming TV", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.StreamingTV = v.(string) }},
	{Name: "StreamingMovies", Label: "Streaming Movies", Kind: KindString, Enum: internetAddOn,
		set: func(r *models.CustomerRecord, v any) { r.StreamingMovies = v.(string) }},
	{Name: "Contract", Label: "Contract", Kind: KindString, Enum: oneOf("Month-to-month", "One year", "Two year"),
		set: func(r *models.CustomerRecord, v any) { r.Contract = v.(string) }},
	{Name: "PaperlessBilling", Label: "Paperless Billing", Kind: KindString, Enum: yesNo,
		set: func(r *models.CustomerRecord, v any) { r.PaperlessBilling = v.(string) }},
	{Name: "PaymentMethod", Label: "Payment Method", Kind: KindString,
		Enum: oneOf("Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"),
		set:  func(r *models.CustomerRecord, v any) { r.PaymentMethod = v.(string) }},
	{Name: "MonthlyCharges", Label: "Monthly Charges ($)", Kind: KindNumber, Min: bound(0), Max: bound(1000), Default: 70.0,
		set: func(r *models.CustomerRecord, v any) { r.MonthlyCharges = v.(float64) }},
	{Name: "Speed", Label: "Internet Speed (Mbps)", Kind: KindNumber, Min: bound(0), Max: bound(1000), Default: 50.0,
		set: func(r *models.CustomerRecord, v any) { r.Speed = v.(float64) }},
	{Name: "DataAllowance", Label: "Data Allowance (GB)", Kind: KindNumber, Min: bound(0), Max: bound(10000), Default: 100.0,
		set: func(r *models.CustomerRecord, v any) { r.DataAllowance = v.(float64) }},
	{Name: "TenureGroup", Label: "Tenure Group", Kind: KindString, Enum: oneOf("0-1yr", "1-2yr", "2-4yr", "4-6yr", "6+yr"),
		set: func(r *models.CustomerRecord, v any) { r.TenureGroup = v.(string) }},
}

func init() {
	for i := range fields {
		if fields[i].Default == nil && fields[i].Categorical() {
			fields[i].Default = fields[i].Enum[0]
		}
	}
}

// Fields returns the accepted input attributes in canonical order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the model column names in canonical order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func oneOf(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func bound(v float64) *float64 {
	return &v
}

// CheckColumns fails when a model was fitted on a column the contract does
// not collect.
func CheckColumns(columns []string) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name] = true
	}
	var unknown []string
	for _, c := range columns {
		if !known[c] {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("model expects columns not collected from customers: %s", strings.Join(unknown, ", "))
	}
	return nil
}
