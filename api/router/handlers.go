package router

import (
	"encoding/json"
	"net/http"

	"github.com/wavefinderapp/payments-api/api/bootstrap"
	"github.com/wavefinderapp/payments-api/api/metrics"
)

// errorPayload is the body-encoded failure shape. Gateway and validation
// failures ride on a 200 status; existing callers inspect the payload, not
// the status code.
type errorPayload struct {
	Error string `json:"error"`
}

type attachPaymentMethodRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
	UseStripeSDK    bool   `json:"useStripeSdk"`
	UserEmail       string `json:"userEmail"`
}

type confirmIntentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type createSubscriptionRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
	CustomerID      string `json:"customerId"`
	SubscriptionID  string `json:"subscriptionId"`
}

type cancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId"`
}

func handleAttachPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req attachPaymentMethodRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.PaymentMethodID == "" || req.UserEmail == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := bootstrap.GetPaymentService().AttachAndConfirm(req.PaymentMethodID, req.UserEmail, req.UseStripeSDK)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("attach_and_confirm").Inc()
		writeJSON(w, http.StatusOK, errorPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func handleConfirmIntent(w http.ResponseWriter, r *http.Request) {
	var req confirmIntentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.PaymentIntentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := bootstrap.GetPaymentService().ConfirmIntent(req.PaymentIntentID)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("confirm_intent").Inc()
		writeJSON(w, http.StatusOK, errorPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sub, err := bootstrap.GetPaymentService().CreateOrResumeSubscription(req.CustomerID, req.PaymentMethodID, req.SubscriptionID)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("create_subscription").Inc()
		writeJSON(w, http.StatusOK, errorPayload{Error: err.Error()})
		return
	}
	// Raw gateway shape, no normalization.
	writeJSON(w, http.StatusOK, sub)
}

func handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	var req cancelSubscriptionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sub, err := bootstrap.GetPaymentService().CancelSubscription(req.SubscriptionID)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("cancel_subscription").Inc()
		writeJSON(w, http.StatusOK, errorPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func handleListLocations(w http.ResponseWriter, r *http.Request) {
	store := bootstrap.GetLocationStore()
	if store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorPayload{Error: "locations catalog not configured"})
		return
	}
	locs, err := store.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
