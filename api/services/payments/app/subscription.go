package app

import (
	"log/slog"
	"time"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/wavefinderapp/payments-api/api/config"
	"github.com/wavefinderapp/payments-api/api/metrics"
)

// CreateOrResumeSubscription implements the subscription lifecycle decision,
// first match wins:
//
//  1. any prior subscription record for the customer, whatever its status, is
//     resumed with the billing cycle re-anchored to now — this short-circuits
//     everything below, including payment-method binding;
//  2. otherwise the payment method is bound and set as invoice default;
//  3. a supplied subscriptionId is retrieved as-is, no mutation;
//  4. otherwise product, price and subscription are created with a trial
//     window ending TrialPeriodDays from local midnight today.
//
// The gateway's subscription object is returned verbatim on every path.
func (s serviceImpl) CreateOrResumeSubscription(customerID, paymentMethodID, subscriptionID string) (stripe.Subscription, error) {
	existing, err := s.gw.ListSubscriptions(customerID)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if len(existing) > 0 {
		resumed, err := s.gw.ResumeSubscription(existing[0].ID)
		if err != nil {
			return stripe.Subscription{}, err
		}
		slog.Info("resumed subscription", "subscription_id", resumed.ID, "customer_id", customerID)
		metrics.BillingEvents.WithLabelValues("subscription_resumed").Inc()
		return resumed, nil
	}

	if err := s.bindPaymentMethod(paymentMethodID, customerID); err != nil {
		return stripe.Subscription{}, err
	}
	if err := s.gw.SetDefaultPaymentMethod(customerID, paymentMethodID); err != nil {
		return stripe.Subscription{}, err
	}

	if subscriptionID != "" {
		// The client already knows its subscription; just confirm it exists.
		return s.gw.GetSubscription(subscriptionID)
	}

	prod, err := s.gw.CreateProduct(config.ProductName)
	if err != nil {
		return stripe.Subscription{}, err
	}
	price, err := s.gw.CreatePrice(prod.ID, config.PlanAmount, config.PlanCurrency, config.PlanInterval)
	if err != nil {
		return stripe.Subscription{}, err
	}
	sub, err := s.gw.CreateSubscription(customerID, price.ID, trialEnd(time.Now()))
	if err != nil {
		return stripe.Subscription{}, err
	}
	slog.Info("created subscription", "subscription_id", sub.ID, "customer_id", customerID)
	metrics.BillingEvents.WithLabelValues("subscription_created").Inc()
	return sub, nil
}

// CancelSubscription cancels immediately (not at period end) and returns the
// canceled subscription.
func (s serviceImpl) CancelSubscription(subscriptionID string) (stripe.Subscription, error) {
	sub, err := s.gw.CancelSubscription(subscriptionID)
	if err != nil {
		return stripe.Subscription{}, err
	}
	slog.Info("canceled subscription", "subscription_id", sub.ID)
	metrics.BillingEvents.WithLabelValues("subscription_canceled").Inc()
	return sub, nil
}
