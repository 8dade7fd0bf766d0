package app

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/wavefinderapp/payments-api/api/config"
	"github.com/wavefinderapp/payments-api/api/services/payments/gateway/mock_gateway"
)

// Expectation-based variants of the lifecycle properties: any gateway call
// outside the expected set fails the test.

func Test_CreateOrResume_Mock_ResumeShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock_gateway.NewMockPaymentGateway(ctrl)
	gw.EXPECT().ListSubscriptions("cus_1").Return([]stripe.Subscription{
		{ID: "sub_1", Status: stripe.SubscriptionStatusCanceled},
	}, nil)
	gw.EXPECT().ResumeSubscription("sub_1").Return(stripe.Subscription{
		ID: "sub_1", Status: stripe.SubscriptionStatusActive,
	}, nil).Times(1)

	svc := NewService(gw)
	sub, err := svc.CreateOrResumeSubscription("cus_1", "pm_1", "")
	assert.NoError(t, err)
	assert.Equal(t, "sub_1", sub.ID)
}

func Test_CreateOrResume_Mock_CreatePathSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock_gateway.NewMockPaymentGateway(ctrl)
	gw.EXPECT().ListSubscriptions("cus_1").Return(nil, nil)
	gw.EXPECT().GetPaymentMethod("pm_1").Return(stripe.PaymentMethod{ID: "pm_1"}, nil)
	gw.EXPECT().AttachPaymentMethod("pm_1", "cus_1").Return(nil)
	gw.EXPECT().SetDefaultPaymentMethod("cus_1", "pm_1").Return(nil)
	gw.EXPECT().CreateProduct(config.ProductName).Return(stripe.Product{ID: "prod_1"}, nil)
	gw.EXPECT().CreatePrice("prod_1", config.PlanAmount, config.PlanCurrency, config.PlanInterval).Return(stripe.Price{ID: "price_1"}, nil)
	gw.EXPECT().CreateSubscription("cus_1", "price_1", gomock.Any()).Return(stripe.Subscription{ID: "sub_new"}, nil)

	svc := NewService(gw)
	sub, err := svc.CreateOrResumeSubscription("cus_1", "pm_1", "")
	assert.NoError(t, err)
	assert.Equal(t, "sub_new", sub.ID)
}
