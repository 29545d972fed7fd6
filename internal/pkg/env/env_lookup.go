package env

import (
	"os"
	"strconv"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetDurationFromEnv keeps the current value when the variable is absent
// or cannot be parsed by time.ParseDuration.
func TrySetDurationFromEnv(envName string, val *time.Duration) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := time.ParseDuration(envVal); err == nil {
		*val = parsed
	}
}

func TrySetIntFromEnv(envName string, val *int) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := strconv.Atoi(envVal); err == nil {
		*val = parsed
	}
}

func TrySetBoolFromEnv(envName string, val *bool) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := strconv.ParseBool(envVal); err == nil {
		*val = parsed
	}
}
