package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
)

const (
	fieldID     = "id"
	fieldName   = "name"
	fieldStatus = "status"
)

// validator tags applied to field values once their type is known
var (
	nameTag = fmt.Sprintf("min=1,max=%d", MaxNameLength)
	idTag   = "gt=0"
)

// Messages returned for type failures.
const (
	MsgRequired       = "Field required"
	MsgInvalidString  = "Input should be a valid string"
	MsgInvalidInteger = "Input should be a valid integer"
	MsgInvalidBoolean = "Input should be a valid boolean"
)

// Messages returned for constraint failures.
const (
	MsgNameEmpty   = "Name must not be empty."
	MsgNameTooLong = "Name must not exceed 50 characters."
	MsgIDPositive  = "ID must be a positive integer."
)

// constraintMessages maps field and failing validator tag to a user-facing message.
var constraintMessages = map[string]map[string]string{
	fieldName: {
		"min": MsgNameEmpty,
		"max": MsgNameTooLong,
	},
	fieldID: {
		"gt": MsgIDPositive,
	},
}

var validate = validator.New()

func checkConstraint(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if msg, ok := constraintMessages[field][fieldErrs[0].Tag()]; ok {
			return domain.NewValidationError(field, msg, nil)
		}
	}
	return domain.NewValidationError(field, "Validation error", nil)
}

func stringField(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", domain.NewValidationError(key, MsgRequired, nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.NewValidationError(key, MsgInvalidString, nil)
	}
	return s, nil
}

func boolField(raw map[string]any, key string) (bool, error) {
	v, ok := raw[key]
	if !ok {
		return false, domain.NewValidationError(key, MsgRequired, nil)
	}
	b, ok := v.(bool)
	if !ok {
		return false, domain.NewValidationError(key, MsgInvalidBoolean, nil)
	}
	return b, nil
}

// intField accepts JSON numbers with no fractional part that fit in an int.
func intField(raw map[string]any, key string) (int, error) {
	v, ok := raw[key]
	if !ok {
		return 0, domain.NewValidationError(key, MsgRequired, nil)
	}

	invalid := domain.NewValidationError(key, MsgInvalidInteger, nil)
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, invalid
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intField(map[string]any{key: i}, key)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, invalid
		}
		return integralFloat(f, invalid)
	case float64:
		return integralFloat(n, invalid)
	default:
		return 0, invalid
	}
}

func integralFloat(f float64, invalid error) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalid
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, invalid
	}
	return int(f), nil
}
