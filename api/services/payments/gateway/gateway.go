package gateway

import stripe "github.com/stripe/stripe-go/v76"

// SetupIntentRequest carries the inputs for creating a confirmed off-session
// setup intent.
type SetupIntentRequest struct {
	CustomerID      string
	PaymentMethodID string
	UseStripeSDK    bool
}

// PaymentGateway abstracts the Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type PaymentGateway interface {
	ListCustomersByEmail(email string) ([]stripe.Customer, error)
	CreateCustomer(email string) (stripe.Customer, error)
	SetDefaultPaymentMethod(customerID, paymentMethodID string) error

	GetPaymentMethod(id string) (stripe.PaymentMethod, error)
	AttachPaymentMethod(id, customerID string) error

	CreateSetupIntent(req SetupIntentRequest) (stripe.SetupIntent, error)
	ConfirmSetupIntent(id string) (stripe.SetupIntent, error)

	ListSubscriptions(customerID string) ([]stripe.Subscription, error)
	GetSubscription(id string) (stripe.Subscription, error)
	ResumeSubscription(id string) (stripe.Subscription, error)
	CreateSubscription(customerID, priceID string, trialEnd int64) (stripe.Subscription, error)
	CancelSubscription(id string) (stripe.Subscription, error)

	CreateProduct(name string) (stripe.Product, error)
	CreatePrice(productID string, unitAmount int64, currency, interval string) (stripe.Price, error)
}
