package app

import (
	"log/slog"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/wavefinderapp/payments-api/api/metrics"
)

// findOrCreateCustomer looks the customer up by email and creates one when no
// match exists. The first listed match wins; duplicates are not disambiguated,
// and concurrent callers with the same email can still race a second create.
// The gateway stays the source of truth either way.
func (s serviceImpl) findOrCreateCustomer(email string) (stripe.Customer, error) {
	custs, err := s.gw.ListCustomersByEmail(email)
	if err != nil {
		return stripe.Customer{}, err
	}
	if len(custs) > 0 {
		return custs[0], nil
	}

	cust, err := s.gw.CreateCustomer(email)
	if err != nil {
		return stripe.Customer{}, err
	}
	slog.Info("created customer", "customer_id", cust.ID)
	metrics.BillingEvents.WithLabelValues("customer_created").Inc()
	return cust, nil
}
