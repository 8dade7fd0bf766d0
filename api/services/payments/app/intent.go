package app

import (
	stripe "github.com/stripe/stripe-go/v76"
)

// intentStatusRequestPaymentMethod is the status the gateway reports when the
// card is declined while confirming an off-session setup intent.
const intentStatusRequestPaymentMethod stripe.SetupIntentStatus = "request_payment_method"

// ResolveIntent maps a setup intent's status to the normalized outcome sent to
// callers. Total over the known statuses; anything unmodeled falls into the
// default branch instead of surfacing as an error to the transport.
func ResolveIntent(intent stripe.SetupIntent) IntentOutcome {
	switch intent.Status {
	case stripe.SetupIntentStatusRequiresAction:
		// Client-side authentication (e.g. 3DS) still required.
		return IntentOutcome{
			ClientSecret:  intent.ClientSecret,
			RequireAction: true,
			Status:        string(intent.Status),
		}
	case intentStatusRequestPaymentMethod:
		return IntentOutcome{Error: CardDeniedMessage}
	case stripe.SetupIntentStatusSucceeded:
		outcome := IntentOutcome{
			ClientSecret: intent.ClientSecret,
			Status:       string(intent.Status),
		}
		if intent.Customer != nil {
			outcome.Customer = intent.Customer.ID
		}
		return outcome
	}
	return IntentOutcome{Error: FailedMessage}
}
