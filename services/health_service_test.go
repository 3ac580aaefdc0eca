package services

import (
	"testing"
	"time"

	"github.com/TickTockPlumbing/ticktock-backend/config"
	"github.com/TickTockPlumbing/ticktock-backend/types"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthConfigured(t *testing.T) {
	svc := NewHealthService(&config.EmailConfig{ResendAPIKey: "re_test_key"}, "1.2.3")

	health := svc.CheckHealth()

	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["email"].Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.NotEmpty(t, health.Uptime)
}

func TestCheckHealthMissingAPIKey(t *testing.T) {
	svc := NewHealthService(&config.EmailConfig{}, "dev")

	health := svc.CheckHealth()

	assert.Equal(t, types.HealthStatusDegraded, health.Status)
	assert.Equal(t, types.HealthStatusDegraded, health.Components["email"].Status)
	assert.NotEmpty(t, health.Components["email"].Details)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h0m5s", formatUptime(5*time.Second))
	assert.Equal(t, "1h1m1s", formatUptime(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "25h0m0s", formatUptime(25*time.Hour))
}
