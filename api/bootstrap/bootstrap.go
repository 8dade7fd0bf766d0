package bootstrap

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/wavefinderapp/payments-api/api/config"
	"github.com/wavefinderapp/payments-api/api/database"
	"github.com/wavefinderapp/payments-api/api/services/locations"
	paymentsapp "github.com/wavefinderapp/payments-api/api/services/payments/app"
	stripegw "github.com/wavefinderapp/payments-api/api/services/payments/gateway/stripe"
)

var paymentService paymentsapp.Service
var locationStore *locations.Store
var initOnce sync.Once
var initErr error

// Init initializes config and third-party clients, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if paymentService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// The locations catalog is optional; the payments flows never touch it.
	if config.AppConfig.DatabaseURL != "" {
		if err := database.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		store := locations.NewStore(database.GetDB())
		locationStore = &store
	} else {
		slog.Warn("DATABASE_URL not set; locations endpoint disabled")
	}

	stripegw.SetKey(config.AppConfig.StripeSecretKey)

	paymentService = paymentsapp.NewService(stripegw.New())
	return nil
}

func GetPaymentService() paymentsapp.Service { return paymentService }

// GetLocationStore returns the locations store, or nil when no database is configured.
func GetLocationStore() *locations.Store { return locationStore }

// SetPaymentService allows tests to inject a stub implementation.
func SetPaymentService(s paymentsapp.Service) { paymentService = s }

// SetLocationStore allows tests to inject a store backed by a test database.
func SetLocationStore(s *locations.Store) { locationStore = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
