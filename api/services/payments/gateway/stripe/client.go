package stripegw

import (
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentmethod"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/product"
	"github.com/stripe/stripe-go/v76/setupintent"
	"github.com/stripe/stripe-go/v76/subscription"

	gw "github.com/wavefinderapp/payments-api/api/services/payments/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a PaymentGateway backed by the official Stripe SDK.
func New() gw.PaymentGateway { return client{} }

func (client) ListCustomersByEmail(email string) ([]stripe.Customer, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	var custs []stripe.Customer
	iter := customer.List(params)
	for iter.Next() {
		custs = append(custs, *iter.Customer())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return custs, nil
}

func (client) CreateCustomer(email string) (stripe.Customer, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	// Guards the SDK's automatic network retries.
	params.IdempotencyKey = stripe.String(uuid.NewString())
	custPtr, err := customer.New(params)
	if err != nil {
		return stripe.Customer{}, err
	}
	return *custPtr, nil
}

func (client) SetDefaultPaymentMethod(customerID, paymentMethodID string) error {
	_, err := customer.Update(customerID, &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	return err
}

func (client) GetPaymentMethod(id string) (stripe.PaymentMethod, error) {
	pmPtr, err := paymentmethod.Get(id, nil)
	if err != nil {
		return stripe.PaymentMethod{}, err
	}
	return *pmPtr, nil
}

func (client) AttachPaymentMethod(id, customerID string) error {
	_, err := paymentmethod.Attach(id, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	})
	return err
}

func (client) CreateSetupIntent(req gw.SetupIntentRequest) (stripe.SetupIntent, error) {
	params := &stripe.SetupIntentParams{
		Confirm:            stripe.Bool(true),
		Customer:           stripe.String(req.CustomerID),
		PaymentMethod:      stripe.String(req.PaymentMethodID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Usage:              stripe.String("off_session"),
		UseStripeSDK:       stripe.Bool(req.UseStripeSDK),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())
	intentPtr, err := setupintent.New(params)
	if err != nil {
		return stripe.SetupIntent{}, err
	}
	return *intentPtr, nil
}

func (client) ConfirmSetupIntent(id string) (stripe.SetupIntent, error) {
	intentPtr, err := setupintent.Confirm(id, nil)
	if err != nil {
		return stripe.SetupIntent{}, err
	}
	return *intentPtr, nil
}

func (client) ListSubscriptions(customerID string) ([]stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	var subs []stripe.Subscription
	iter := subscription.List(params)
	for iter.Next() {
		subs = append(subs, *iter.Subscription())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

func (client) GetSubscription(id string) (stripe.Subscription, error) {
	subPtr, err := subscription.Get(id, nil)
	if err != nil {
		return stripe.Subscription{}, err
	}
	return *subPtr, nil
}

func (client) ResumeSubscription(id string) (stripe.Subscription, error) {
	subPtr, err := subscription.Resume(id, &stripe.SubscriptionResumeParams{
		BillingCycleAnchor: stripe.String("now"),
	})
	if err != nil {
		return stripe.Subscription{}, err
	}
	return *subPtr, nil
}

func (client) CreateSubscription(customerID, priceID string, trialEnd int64) (stripe.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		TrialEnd: stripe.Int64(trialEnd),
	}
	// Lets the caller confirm the first payment without a second round-trip.
	params.AddExpand("latest_invoice.payment_intent")
	params.IdempotencyKey = stripe.String(uuid.NewString())
	subPtr, err := subscription.New(params)
	if err != nil {
		return stripe.Subscription{}, err
	}
	return *subPtr, nil
}

func (client) CancelSubscription(id string) (stripe.Subscription, error) {
	subPtr, err := subscription.Cancel(id, nil)
	if err != nil {
		return stripe.Subscription{}, err
	}
	return *subPtr, nil
}

func (client) CreateProduct(name string) (stripe.Product, error) {
	params := &stripe.ProductParams{Name: stripe.String(name)}
	params.IdempotencyKey = stripe.String(uuid.NewString())
	prodPtr, err := product.New(params)
	if err != nil {
		return stripe.Product{}, err
	}
	return *prodPtr, nil
}

func (client) CreatePrice(productID string, unitAmount int64, currency, interval string) (stripe.Price, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(interval),
		},
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())
	pricePtr, err := price.New(params)
	if err != nil {
		return stripe.Price{}, err
	}
	return *pricePtr, nil
}
