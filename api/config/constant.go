package config

import (
	"log"
	"strings"
)

const (
	// ProdDbId is the identifier for the production database
	ProdDbId = "wavefinderapp"

	// ProductName is the catalog name of the only subscription offering.
	ProductName = "Subscribe WaveFinder"

	// PlanAmount is the monthly price in the smallest currency unit (cents).
	PlanAmount int64 = 199

	// PlanCurrency is the fixed billing currency.
	PlanCurrency = "eur"

	// PlanInterval is the recurring billing interval.
	PlanInterval = "month"

	// TrialPeriodDays is the length of the free trial on new subscriptions.
	TrialPeriodDays = 7
)

// CheckNotProdDB aborts immediately if the configured database URL contains ProdDbId.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
}
