package config

import (
	"os"
	"path/filepath"
	"testing"

	"blackjack-server/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	restore := util.SetEnv("BJ_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	defer restore()

	require.NoError(t, Load())

	a := assert.New(t)
	a.Equal(":5000", config.Listen)
	a.Equal(1000, config.Blackjack.StartingBalance)
	a.Equal(5, config.Blackjack.SettleTimeoutSeconds)
	a.Equal("", config.Log.Level)
	a.False(config.Log.DisableAccessLogs)
}

func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	contents := `listen: ":8080"
blackjack:
  startingBalance: 250
  settleTimeoutSeconds: 2
log:
  level: debug
  disableAccessLogs: true
`
	require.NoError(t, os.WriteFile(file, []byte(contents), 0600))

	restore := util.SetEnv("BJ_CONFIG_FILE", file)
	defer restore()

	require.NoError(t, Load())

	a := assert.New(t)
	a.Equal(":8080", config.Listen)
	a.Equal(250, config.Blackjack.StartingBalance)
	a.Equal(2, config.Blackjack.SettleTimeoutSeconds)
	a.Equal("debug", config.Log.Level)
	a.True(config.Log.DisableAccessLogs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("listen: \":8080\"\n"), 0600))

	restoreFile := util.SetEnv("BJ_CONFIG_FILE", file)
	defer restoreFile()

	restoreListen := util.SetEnv("BJ_LISTEN", ":9999")
	defer restoreListen()

	restoreBalance := util.SetEnv("BJ_BLACKJACK_STARTING_BALANCE", "75")
	defer restoreBalance()

	require.NoError(t, Load())

	a := assert.New(t)
	a.Equal(":9999", config.Listen)
	a.Equal(75, config.Blackjack.StartingBalance)
}

func TestLoad_BadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("listen: [not valid\n"), 0600))

	restore := util.SetEnv("BJ_CONFIG_FILE", file)
	defer restore()

	assert.Error(t, Load())
}

func TestInstance(t *testing.T) {
	restore := util.SetEnv("BJ_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	defer restore()

	config = Config{}
	c := Instance()
	assert.Equal(t, ":5000", c.Listen)
	assert.True(t, config.loaded)
}
