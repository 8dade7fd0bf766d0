package app

import (
	"log/slog"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/wavefinderapp/payments-api/api/metrics"
	gw "github.com/wavefinderapp/payments-api/api/services/payments/gateway"
)

// Service defines the business operations for the payments domain.
// Gateway failures are returned as-is; the HTTP layer encodes them into the
// response payload without retrying or compensating prior side effects.
type Service interface {
	AttachAndConfirm(paymentMethodID, userEmail string, useStripeSDK bool) (IntentOutcome, error)
	ConfirmIntent(paymentIntentID string) (IntentOutcome, error)
	CreateOrResumeSubscription(customerID, paymentMethodID, subscriptionID string) (stripe.Subscription, error)
	CancelSubscription(subscriptionID string) (stripe.Subscription, error)
}

// serviceImpl is a concrete implementation holding the injected gateway.
type serviceImpl struct{ gw gw.PaymentGateway }

func NewService(g gw.PaymentGateway) Service { return serviceImpl{gw: g} }

// AttachAndConfirm resolves the customer by email, binds the payment method,
// creates a confirmed off-session setup intent and promotes the intent's
// payment method to the customer's invoice default.
func (s serviceImpl) AttachAndConfirm(paymentMethodID, userEmail string, useStripeSDK bool) (IntentOutcome, error) {
	cust, err := s.findOrCreateCustomer(userEmail)
	if err != nil {
		return IntentOutcome{}, err
	}
	slog.Info("resolved customer", "customer_id", cust.ID)

	if err := s.bindPaymentMethod(paymentMethodID, cust.ID); err != nil {
		return IntentOutcome{}, err
	}

	intent, err := s.gw.CreateSetupIntent(gw.SetupIntentRequest{
		CustomerID:      cust.ID,
		PaymentMethodID: paymentMethodID,
		UseStripeSDK:    useStripeSDK,
	})
	if err != nil {
		return IntentOutcome{}, err
	}
	slog.Info("created setup intent", "intent_id", intent.ID, "status", intent.Status)

	// The intent carries the payment method that actually got stored; fall
	// back to the requested one when the gateway returns it unset.
	defaultPM := paymentMethodID
	if intent.PaymentMethod != nil && intent.PaymentMethod.ID != "" {
		defaultPM = intent.PaymentMethod.ID
	}
	if err := s.gw.SetDefaultPaymentMethod(cust.ID, defaultPM); err != nil {
		return IntentOutcome{}, err
	}

	metrics.BillingEvents.WithLabelValues("intent_confirmed").Inc()
	return ResolveIntent(intent), nil
}

// ConfirmIntent confirms a pending setup intent and normalizes the result.
func (s serviceImpl) ConfirmIntent(paymentIntentID string) (IntentOutcome, error) {
	intent, err := s.gw.ConfirmSetupIntent(paymentIntentID)
	if err != nil {
		return IntentOutcome{}, err
	}
	slog.Info("confirmed setup intent", "intent_id", intent.ID, "status", intent.Status)
	metrics.BillingEvents.WithLabelValues("intent_confirmed").Inc()
	return ResolveIntent(intent), nil
}
