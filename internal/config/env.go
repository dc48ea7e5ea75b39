package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var ErrUnset = errors.New("env variable is not set")

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func lookupInt(name string, fallback int) (int, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", name, err)
	}
	return n, nil
}

// Seed reads BOMBSAWAY_SEED. Boards are seeded at random when it is unset.
func Seed() (uint64, error) {
	s, ok := os.LookupEnv("BOMBSAWAY_SEED")
	if !ok {
		return 0, fmt.Errorf("BOMBSAWAY_SEED %w", ErrUnset)
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to convert BOMBSAWAY_SEED to uint: %w", err)
	}
	return seed, nil
}
