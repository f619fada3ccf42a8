package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.ReservationTTL)
	assert.Equal(t, "@every 1m", cfg.SweepSpec)
	assert.Contains(t, cfg.DatabaseURL(), "postgres://")
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("RESERVATION_TTL", "-5m")

	_, err := Load()

	assert.Error(t, err)
}
