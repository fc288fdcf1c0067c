package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "SOLVER_ALGORITHM", "SOLVER_OPENING", "SOLVER_MAX_ITERATIONS", "SOLVER_CACHE_SIZE"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "entropy", c.Algorithm)
	assert.Equal(t, "SALET", c.Opening)
	assert.Equal(t, 20, c.MaxIterations)
	assert.Equal(t, 4096, c.CacheSize)
	assert.Positive(t, c.Workers)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SOLVER_ALGORITHM", "minimax")
	t.Setenv("SOLVER_MAX_ITERATIONS", "7")
	t.Setenv("SOLVER_CACHE_SIZE", "not-a-number")

	c := FromEnv()
	assert.Equal(t, "minimax", c.Algorithm)
	assert.Equal(t, 7, c.MaxIterations)
	assert.Equal(t, 4096, c.CacheSize)
}

func TestLoadReadsDotEnv(t *testing.T) {
	// godotenv never overrides a variable that is already set, even to "".
	t.Setenv("SOLVER_OPENING", "")
	require.NoError(t, os.Unsetenv("SOLVER_OPENING"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOLVER_OPENING=soare\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "soare", c.Opening)
}

func TestLoadMissingDotEnvIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
