package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = append([]string{"test"}, args...)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", ":9090", "-d", "postgres://other", "-g", "6", "-w", "30")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://other", c.DatabaseDSN)
	assert.Equal(t, 6, c.PasscodeDigits)
	assert.Equal(t, 30*time.Minute, c.PasscodeWindow)
}

func TestParseFlags_KeepsDefaults(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, time.Hour, c.PasscodeWindow)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, "-test.v", "-a", ":7070")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7070", c.EndpointAddr)
}
