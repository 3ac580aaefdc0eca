package services

import (
	"fmt"
	"time"

	"github.com/TickTockPlumbing/ticktock-backend/config"
	"github.com/TickTockPlumbing/ticktock-backend/types"
)

// HealthService reports service health. The only external dependency is the
// email provider, and its API is not probed on every check; readiness means
// the provider credentials are configured.
type HealthService struct {
	emailCfg  *config.EmailConfig
	version   string
	startedAt time.Time
}

func NewHealthService(emailCfg *config.EmailConfig, version string) *HealthService {
	return &HealthService{
		emailCfg:  emailCfg,
		version:   version,
		startedAt: time.Now(),
	}
}

func (h *HealthService) CheckHealth() types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	emailStatus := h.checkEmailConfig()
	components["email"] = emailStatus
	if emailStatus.Status != types.HealthStatusUp {
		overallStatus = emailStatus.Status
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Uptime:     formatUptime(time.Since(h.startedAt)),
	}
}

func (h *HealthService) checkEmailConfig() types.HealthComponent {
	if h.emailCfg.ResendAPIKey == "" {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Email provider API key not configured",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}
