package strings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T SupportedValueParsingTypes | SupportedPointerParsingTypes](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case *bool:
		v, err = parsePointerValue[bool](value)
	case int:
		v, err = strconv.Atoi(value)
	case *int:
		v, err = parsePointerValue[int](value)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		v = uint(u)
	case *uint:
		v, err = parsePointerValue[uint](value)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case *float64:
		v, err = parsePointerValue[float64](value)
	case string:
		v, err = value, nil
	case *string:
		v, err = parsePointerValue[string](value)
	case time.Time:
		v, err = parseTimeValue(value)
	case *time.Time:
		v, err = parsePointerValue[time.Time](value)
	case time.Duration:
		v, err = time.ParseDuration(value)
	case *time.Duration:
		v, err = parsePointerValue[time.Duration](value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	case *uuid.UUID:
		v, err = parsePointerValue[uuid.UUID](value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("failed to convert to type %T: %w", blank, err)
	}
	return v.(T), nil
}

func parsePointerValue[T SupportedValueParsingTypes](value string) (*T, error) {
	parsed, err := ParseTypedValue[T](value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseTimeValue(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("RFC3339, RFC3339Nano or Unix time expected")
	}
	if unixTime < 0 {
		return time.Time{}, errors.New("got negative seconds value")
	}

	return time.Unix(unixTime, 0), nil
}
