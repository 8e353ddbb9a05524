package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	os.Setenv("HOLDEM_CONFIG_FILE", filepath.Join(t.TempDir(), "no-such-file.yaml")) // nolint:errcheck
	defer os.Unsetenv("HOLDEM_CONFIG_FILE")                                          // nolint:errcheck

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, 100000, c.StartingChips)
	assert.Equal(t, 500, c.SmallBlind)
	assert.Equal(t, 1000, c.BigBlind)
	assert.Equal(t, 3, c.Bots)
}

func TestLoad_fileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("smallBlind: 25\nbigBlind: 50\nbots: 5\n"), 0600))

	os.Setenv("HOLDEM_CONFIG_FILE", path)      // nolint:errcheck
	os.Setenv("HOLDEM_BIG_BLIND", "100")       // nolint:errcheck
	defer os.Unsetenv("HOLDEM_CONFIG_FILE")    // nolint:errcheck
	defer os.Unsetenv("HOLDEM_BIG_BLIND")      // nolint:errcheck

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, 25, c.SmallBlind)
	assert.Equal(t, 100, c.BigBlind)
	assert.Equal(t, 5, c.Bots)
}
