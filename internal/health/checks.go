package health

import (
	"fmt"
	"time"

	"github.com/freshmart/supermarket-inventory/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "supermarket-inventory",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
