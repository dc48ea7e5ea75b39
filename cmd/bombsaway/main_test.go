package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileConfig(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	require.NoError(t, os.Unsetenv("LOG_FILE"))
	t.Setenv("LOG_MAX_SIZE", "")
	t.Setenv("LOG_MAX_BACKUPS", "")
	t.Setenv("LOG_MAX_AGE", "")

	lf, err := logFileConfig("")
	require.NoError(t, err)
	assert.Nil(t, lf, "no file asked for")

	lf, err = logFileConfig("run.log")
	require.NoError(t, err)
	require.NotNil(t, lf)
	assert.Equal(t, "run.log", lf.Filename)

	t.Setenv("LOG_MAX_SIZE", "huge")
	_, err = logFileConfig("run.log")
	assert.Error(t, err, "bad limits with an explicit file")

	t.Setenv("LOG_FILE", "env.log")
	_, err = logFileConfig("")
	assert.Error(t, err, "bad limits with LOG_FILE")
}
