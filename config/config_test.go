package config

import (
	"testing"

	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
	}{
		{
			name:        "defaults are sufficient in development",
			envVars:     map[string]string{},
			expectError: false,
		},
		{
			name: "production requires resend api key",
			envVars: map[string]string{
				"SERVER_ENVIRONMENT": "production",
			},
			expectError: true,
		},
		{
			name: "production with resend api key",
			envVars: map[string]string{
				"SERVER_ENVIRONMENT": "production",
				"RESEND_API_KEY":     "re_test_key",
			},
			expectError: false,
		},
		{
			name: "invalid environment",
			envVars: map[string]string{
				"SERVER_ENVIRONMENT": "staging",
			},
			expectError: true,
		},
		{
			name: "empty from address",
			envVars: map[string]string{
				"EMAIL_FROM_ADDRESS": " ",
			},
			expectError: false, // whitespace is not validated, only emptiness
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "TickTock Plumbing", cfg.Email.FromName)
	assert.Equal(t, "ticktockplumbing@yahoo.com", cfg.Quote.RecipientAddress)
	assert.Equal(t, "(305) 766-5526", cfg.Quote.FallbackPhone)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTE_RECIPIENT_ADDRESS", "intake@example.com")
	t.Setenv("EMAIL_FROM_NAME", "Test Sender")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "intake@example.com", cfg.Quote.RecipientAddress)
	assert.Equal(t, "Test Sender", cfg.Email.FromName)
}
