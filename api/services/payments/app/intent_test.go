package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v76"
)

func Test_ResolveIntent_RequiresAction(t *testing.T) {
	intent := stripe.SetupIntent{
		Status:       stripe.SetupIntentStatusRequiresAction,
		ClientSecret: "seti_secret_123",
	}
	outcome := ResolveIntent(intent)
	assert.True(t, outcome.RequireAction)
	assert.Equal(t, "seti_secret_123", outcome.ClientSecret)
	assert.Equal(t, "requires_action", outcome.Status)
	assert.Empty(t, outcome.Error)
	assert.Empty(t, outcome.Customer)
}

func Test_ResolveIntent_RequestPaymentMethod(t *testing.T) {
	intent := stripe.SetupIntent{Status: "request_payment_method", ClientSecret: "seti_secret_123"}
	outcome := ResolveIntent(intent)
	assert.Equal(t, CardDeniedMessage, outcome.Error)
	assert.Empty(t, outcome.ClientSecret)
	assert.False(t, outcome.RequireAction)
}

func Test_ResolveIntent_Succeeded(t *testing.T) {
	intent := stripe.SetupIntent{
		Status:       stripe.SetupIntentStatusSucceeded,
		ClientSecret: "seti_secret_123",
		Customer:     &stripe.Customer{ID: "cus_123"},
	}
	outcome := ResolveIntent(intent)
	assert.Equal(t, "cus_123", outcome.Customer)
	assert.Equal(t, "seti_secret_123", outcome.ClientSecret)
	assert.Equal(t, "succeeded", outcome.Status)
	assert.Empty(t, outcome.Error)
}

func Test_ResolveIntent_UnknownStatusFallsThrough(t *testing.T) {
	for _, status := range []stripe.SetupIntentStatus{
		stripe.SetupIntentStatusProcessing,
		stripe.SetupIntentStatusCanceled,
		stripe.SetupIntentStatusRequiresConfirmation,
		"some_future_status",
		"",
	} {
		outcome := ResolveIntent(stripe.SetupIntent{Status: status, ClientSecret: "seti_secret_123"})
		assert.Equal(t, FailedMessage, outcome.Error, "status %q", status)
		assert.Empty(t, outcome.ClientSecret, "status %q", status)
	}
}

func Test_ResolveIntent_Pure(t *testing.T) {
	intent := stripe.SetupIntent{
		Status:       stripe.SetupIntentStatusSucceeded,
		ClientSecret: "seti_secret_123",
		Customer:     &stripe.Customer{ID: "cus_123"},
	}
	first := ResolveIntent(intent)
	second := ResolveIntent(intent)
	assert.Equal(t, first, second)
}
