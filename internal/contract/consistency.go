package contract

import (
	"fmt"
	"math"

	"github.com/telco_churn/backend/internal/models"
)

const (
	noInternetService = "No internet service"
	noPhoneService    = "No phone service"
)

var tenureGroups = map[string][2]int{
	"0-1yr": {0, 12},
	"1-2yr": {13, 24},
	"2-4yr": {25, 48},
	"4-6yr": {49, 72},
	"6+yr":  {73, math.MaxInt},
}

// Inconsistencies lists cross-field contradictions in rec. They are reported
// for logging only; a record carrying them is still valid input.
func Inconsistencies(rec models.CustomerRecord) []string {
	var out []string

	if rec.InternetService == "No" {
		addOns := []struct {
			name  string
			value string
		}{
			{"OnlineSecurity", rec.OnlineSecurity},
			{"OnlineBackup", rec.OnlineBackup},
			{"DeviceProtection", rec.DeviceProtection},
			{"TechSupport", rec.TechSupport},
			{"StreamingTV", rec.StreamingTV},
			{"StreamingMovies", rec.StreamingMovies},
		}
		for _, a := range addOns {
			if a.value != noInternetService {
				out = append(out, fmt.Sprintf("%s=%q with InternetService=\"No\"", a.name, a.value))
			}
		}
	}

	if rec.PhoneService == "No" && rec.MultipleLines != noPhoneService {
		out = append(out, fmt.Sprintf("MultipleLines=%q with PhoneService=\"No\"", rec.MultipleLines))
	}

	if bounds, ok := tenureGroups[rec.TenureGroup]; ok {
		if rec.Tenure < bounds[0] || rec.Tenure > bounds[1] {
			out = append(out, fmt.Sprintf("tenure=%d outside TenureGroup=%q", rec.Tenure, rec.TenureGroup))
		}
	}

	return out
}
