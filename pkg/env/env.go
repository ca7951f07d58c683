package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/taldoflemis/brain.test-gateway/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("environment variable %s not found", key)
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("invalid %s value: %w", key, err)
	}

	return value, nil
}

func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, nil
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("invalid %s value: %w", key, err)
	}

	return value, nil
}
