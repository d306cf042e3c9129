package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/telco_churn/backend/internal/models"
)

// Contract validates raw customer attributes into a CustomerRecord. It is
// shared by every surface that accepts customer input and is safe for
// concurrent use.
type Contract struct {
	validate *validator.Validate
	rules    map[string]string
}

func New(v *validator.Validate) *Contract {
	if v == nil {
		v = validator.New()
	}
	rules := make(map[string]string, len(fields))
	for _, f := range fields {
		rules[f.Name] = ruleFor(f)
	}
	return &Contract{validate: v, rules: rules}
}

// ruleFor renders a field's domain as a validator tag. String enum members are
// quoted so values with spaces survive oneof's parameter split.
func ruleFor(f Field) string {
	if f.Categorical() {
		parts := make([]string, len(f.Enum))
		for i, v := range f.Enum {
			if s, ok := v.(string); ok {
				parts[i] = "'" + s + "'"
			} else {
				parts[i] = fmt.Sprint(v)
			}
		}
		return "oneof=" + strings.Join(parts, " ")
	}
	if f.Min != nil && f.Max != nil {
		return fmt.Sprintf("gte=%s,lte=%s", formatBound(*f.Min), formatBound(*f.Max))
	}
	return ""
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate checks every field of raw and returns the record, or a
// *ValidationError listing all problems in field order. Unknown keys are ignored.
func (c *Contract) Validate(raw map[string]any) (models.CustomerRecord, error) {
	var rec models.CustomerRecord
	var errs []FieldError

	for _, f := range fields {
		value, ok := raw[f.Name]
		if !ok || value == nil {
			errs = append(errs, missingField(f))
			continue
		}
		coerced, ok := coerce(f.Kind, value)
		if !ok {
			errs = append(errs, invalidType(f, value))
			continue
		}
		if fe, bad := c.check(f, coerced, value); bad {
			errs = append(errs, fe)
			continue
		}
		f.set(&rec, coerced)
	}

	if len(errs) > 0 {
		return models.CustomerRecord{}, &ValidationError{Errors: errs}
	}
	return rec, nil
}

// check applies the field's rule to the coerced value and reports problems
// against the raw value the caller sent.
func (c *Contract) check(f Field, coerced, raw any) (FieldError, bool) {
	rule := c.rules[f.Name]
	if rule == "" {
		return FieldError{}, false
	}
	err := c.validate.Var(coerced, rule)
	if err == nil {
		return FieldError{}, false
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalidType(f, raw), true
	}
	switch verrs[0].Tag() {
	case "oneof":
		return invalidEnum(f, raw), true
	case "gte", "lte":
		return outOfRange(f, raw), true
	default:
		return invalidType(f, raw), true
	}
}

func coerce(kind Kind, value any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := value.(string)
		return s, ok
	case KindInteger:
		return toInt(value)
	case KindNumber:
		return toFloat(value)
	}
	return nil, false
}

func toInt(value any) (any, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return integral(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		f, err := v.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, false
		}
		return integral(f)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, false
		}
		return integral(f)
	}
	return nil, false
}

// integral accepts whole numbers of any magnitude. Values beyond int are
// clamped so the range rule reports them.
func integral(f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, false
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	}
	return int(f), true
}

func toFloat(value any) (any, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		f = n
	default:
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}
