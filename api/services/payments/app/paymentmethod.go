package app

import (
	"github.com/wavefinderapp/payments-api/api/metrics"
)

// bindPaymentMethod attaches the payment method to the customer unless it is
// already attached somewhere. An attachment to a different customer is left
// alone; the flow proceeds as if already bound.
func (s serviceImpl) bindPaymentMethod(paymentMethodID, customerID string) error {
	pm, err := s.gw.GetPaymentMethod(paymentMethodID)
	if err != nil {
		return err
	}
	if pm.Customer != nil && pm.Customer.ID != "" {
		return nil
	}
	if err := s.gw.AttachPaymentMethod(paymentMethodID, customerID); err != nil {
		return err
	}
	metrics.BillingEvents.WithLabelValues("payment_method_attached").Inc()
	return nil
}
