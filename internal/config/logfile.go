package config

import (
	"fmt"
	"os"
)

// LogFile configures rotated log output.
type LogFile struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func NewLogFile() (*LogFile, error) {
	filename, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		return nil, fmt.Errorf("LOG_FILE %w", ErrUnset)
	}
	return NewLogFileAt(filename)
}

// NewLogFileAt uses filename and reads the rotation limits from LOG_MAX_SIZE,
// LOG_MAX_BACKUPS and LOG_MAX_AGE.
func NewLogFileAt(filename string) (*LogFile, error) {
	maxSize, err := lookupInt("LOG_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_MAX_AGE", 28)
	if err != nil {
		return nil, err
	}

	cfg := &LogFile{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
	return cfg, nil
}
