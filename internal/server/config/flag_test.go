package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{
		"testbin",
		"-a", ":6000",
		"-m", ":6001",
		"-d", "postgres://localhost/other",
		"-s", "flag_secret",
		"-t", "60",
		"-r", "7",
		"-q", "8",
		"-i", "3",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, ":6001", cfg.EndpointAddrMetrics)
	assert.Equal(t, "postgres://localhost/other", cfg.DatabaseDSN)
	assert.Equal(t, "flag_secret", cfg.SecretKey)
	assert.Equal(t, 60*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionValidityDuration)
	assert.Equal(t, 8, cfg.SubscriberQueueDepth)
	assert.Equal(t, 3*time.Minute, cfg.IdleSubscriptionTimeout)
}

func Test_parseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionValidityDuration)
}
