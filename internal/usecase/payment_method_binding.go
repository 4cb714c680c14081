package usecase

import (
	"context"
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

// bindSetupIntent opens a setup intent for the resolved platform customer and
// stamps that customer on the envelope.
func (g *StripeGateway) bindSetupIntent(ctx context.Context, o entities.Order, customer string) entities.Result[*stripe.SetupIntent] {
	return g.createSetupIntent(ctx, projectSetupIntent(o, customer)).WithCustomer(customer)
}

// bindExistingPaymentMethod attaches order.PaymentMethodID to customer on the
// order's connected account.
func (g *StripeGateway) bindExistingPaymentMethod(ctx context.Context, o entities.Order, customer string) entities.Result[*stripe.PaymentMethod] {
	return g.attachPaymentMethod(ctx, projectAttach(o, customer), o.StripeAccount)
}

// bindPaymentMethodID returns the payment method a payment intent should use.
// A caller-supplied payment_method_id is used as is; otherwise order.PaymentMethod
// is cloned onto the connected account for the platform customer.
func (g *StripeGateway) bindPaymentMethodID(ctx context.Context, o entities.Order, platformCustomer string) entities.Result[string] {
	if o.PaymentMethodID != "" {
		return entities.Success(o.PaymentMethodID)
	}
	created := g.createPaymentMethod(ctx, projectPaymentMethod(o, platformCustomer), o.StripeAccount)
	return entities.Then(created, func(pm *stripe.PaymentMethod) entities.Result[string] {
		return entities.Success(pm.ID)
	})
}
