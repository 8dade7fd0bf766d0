package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/wavefinderapp/payments-api/api/bootstrap"
	"github.com/wavefinderapp/payments-api/api/services/payments/app"
)

// stubService satisfies app.Service with canned results.
type stubService struct {
	outcome app.IntentOutcome
	sub     stripe.Subscription
	err     error
}

func (s stubService) AttachAndConfirm(paymentMethodID, userEmail string, useStripeSDK bool) (app.IntentOutcome, error) {
	return s.outcome, s.err
}

func (s stubService) ConfirmIntent(paymentIntentID string) (app.IntentOutcome, error) {
	return s.outcome, s.err
}

func (s stubService) CreateOrResumeSubscription(customerID, paymentMethodID, subscriptionID string) (stripe.Subscription, error) {
	return s.sub, s.err
}

func (s stubService) CancelSubscription(subscriptionID string) (stripe.Subscription, error) {
	return s.sub, s.err
}

func newTestServer(t *testing.T, svc app.Service) *httptest.Server {
	t.Helper()
	bootstrap.SetPaymentService(svc)
	return httptest.NewServer(NewRouter())
}

func postJSON(t *testing.T, url string, payload map[string]any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestAttachPaymentMethodHTTP_MissingFieldsBareBadRequest(t *testing.T) {
	ts := newTestServer(t, stubService{})
	defer ts.Close()

	for _, payload := range []map[string]any{
		{},
		{"paymentMethodId": "pm_1"},
		{"userEmail": "a@example.com"},
	} {
		resp := postJSON(t, ts.URL+"/api/attach-payment-method", payload)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, body)
	}
}

func TestAttachPaymentMethodHTTP_Succeeded(t *testing.T) {
	ts := newTestServer(t, stubService{outcome: app.IntentOutcome{
		ClientSecret: "seti_secret_1",
		Status:       "succeeded",
		Customer:     "cus_1",
	}})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/attach-payment-method", map[string]any{
		"paymentMethodId": "pm_1",
		"useStripeSdk":    true,
		"userEmail":       "a@example.com",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "seti_secret_1", got["clientSecret"])
	assert.Equal(t, "succeeded", got["status"])
	assert.Equal(t, "cus_1", got["customer"])
	// The succeeded branch never carries requireAction or error keys.
	assert.NotContains(t, got, "requireAction")
	assert.NotContains(t, got, "error")
}

func TestConfirmIntentHTTP_MissingIDBareBadRequest(t *testing.T) {
	ts := newTestServer(t, stubService{})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/confirm-intent", map[string]any{})
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, body)
}

func TestConfirmIntentHTTP_RequiresAction(t *testing.T) {
	ts := newTestServer(t, stubService{outcome: app.IntentOutcome{
		ClientSecret:  "seti_secret_1",
		RequireAction: true,
		Status:        "requires_action",
	}})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/confirm-intent", map[string]any{"paymentIntentId": "seti_1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, true, got["requireAction"])
	assert.Equal(t, "requires_action", got["status"])
}

func TestCancelSubscriptionHTTP_GatewayErrorEncodedOn200(t *testing.T) {
	ts := newTestServer(t, stubService{err: errors.New("No such subscription: 'sub_missing'")})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/cancel-subscription", map[string]any{"subscriptionId": "sub_missing"})
	defer resp.Body.Close()
	// Failures ride on a 200; callers inspect the payload.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got errorPayload
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "No such subscription: 'sub_missing'", got.Error)
}

func TestCreateSubscriptionHTTP_RawGatewayShape(t *testing.T) {
	ts := newTestServer(t, stubService{sub: stripe.Subscription{
		ID:     "sub_1",
		Status: stripe.SubscriptionStatusTrialing,
	}})
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/create-subscription", map[string]any{
		"paymentMethodId": "pm_1",
		"customerId":      "cus_1",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "sub_1", got["id"])
	assert.Equal(t, "trialing", got["status"])
}

func TestLocationsHTTP_DisabledWithoutDatabase(t *testing.T) {
	ts := newTestServer(t, stubService{})
	defer ts.Close()
	bootstrap.SetLocationStore(nil)

	resp, err := http.Get(ts.URL + "/api/locations")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsHTTP_Exposition(t *testing.T) {
	ts := newTestServer(t, stubService{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "go_goroutines")
}
