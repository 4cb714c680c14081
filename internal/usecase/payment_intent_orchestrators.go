package usecase

import (
	"context"
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

// AttachCard resolves the platform customer and opens a setup intent for it.
func (g *StripeGateway) AttachCard(ctx context.Context, order entities.Order) entities.Result[*stripe.SetupIntent] {
	out := entities.Then(g.resolvePlatformCustomer(ctx, order), func(c *stripe.Customer) entities.Result[*stripe.SetupIntent] {
		return g.bindSetupIntent(ctx, order, c.ID)
	})
	return finish(g, "attachCard", out)
}

// PayOrder charges the order on its connected account.
//
// Steps: platform customer, connected-account customer (retrieved when
// connectedAccountCustomer is given), payment method (skipped when
// payment_method_id is given), payment intent for the connected customer.
func (g *StripeGateway) PayOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	out := entities.Then(g.resolveCustomers(ctx, order, retrieveWhenConnectedGiven), func(rc resolvedCustomers) entities.Result[*stripe.PaymentIntent] {
		return entities.Then(g.bindPaymentMethodID(ctx, order, rc.platform.ID), func(paymentMethod string) entities.Result[*stripe.PaymentIntent] {
			p := projectPayOrder(order, rc.connected.ID, paymentMethod)
			return g.createPaymentIntent(ctx, p.params(), order.StripeAccount)
		})
	})
	return finish(g, "payOrder", out)
}

// RegisterOrder creates a payment intent relying on automatic payment methods.
// The connected-account customer is only retrieved when both customer ids are given.
func (g *StripeGateway) RegisterOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	out := entities.Then(g.resolveCustomers(ctx, order, retrieveWhenBothGiven), func(rc resolvedCustomers) entities.Result[*stripe.PaymentIntent] {
		p := projectRegisterOrder(order, rc.connected.ID)
		return g.createPaymentIntent(ctx, p.params(), order.StripeAccount)
	})
	return finish(g, "registerOrder", out)
}

// CreatePayment is RegisterOrder with capture_method support and the payOrder
// retrieve policy for the connected-account customer.
func (g *StripeGateway) CreatePayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	out := entities.Then(g.resolveCustomers(ctx, order, retrieveWhenConnectedGiven), func(rc resolvedCustomers) entities.Result[*stripe.PaymentIntent] {
		p := projectCreatePayment(order, rc.connected.ID)
		return g.createPaymentIntent(ctx, p.params(), order.StripeAccount)
	})
	return finish(g, "createPayment", out)
}

// AttachCardToCustomer attaches payment_method_id to the connected-account customer.
func (g *StripeGateway) AttachCardToCustomer(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentMethod] {
	out := entities.Then(g.resolveCustomers(ctx, order, retrieveWhenBothGiven), func(rc resolvedCustomers) entities.Result[*stripe.PaymentMethod] {
		return g.bindExistingPaymentMethod(ctx, order, rc.connected.ID)
	})
	return finish(g, "attachCardToCustomer", out)
}
