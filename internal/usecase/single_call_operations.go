package usecase

import (
	"context"
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

func (g *StripeGateway) RemoveCard(ctx context.Context, cardID string) entities.Result[*stripe.PaymentMethod] {
	return finish(g, "removeCard", g.detachPaymentMethod(ctx, cardID))
}

// RefundOrder refunds order.Charge (or order.PaymentIntent) by order.Amount,
// on order.StripeAccount when one is given.
func (g *StripeGateway) RefundOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.Refund] {
	return finish(g, "refundOrder", g.createRefund(ctx, projectRefund(order), order.StripeAccount))
}

// GetOrderStatus retrieves order.OrderID, scoped to order.StripeAccount iff one is given.
func (g *StripeGateway) GetOrderStatus(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	if order.StripeAccount != "" {
		return finish(g, "getOrderStatus", g.retrieveConnectedAccountPaymentIntent(ctx, order.OrderID, order.StripeAccount))
	}
	return finish(g, "getOrderStatus", g.retrievePaymentIntent(ctx, order.OrderID))
}

func (g *StripeGateway) GetPaymentMethod(ctx context.Context, paymentMethodID string) entities.Result[*stripe.PaymentMethod] {
	return finish(g, "getPaymentMethod", g.retrievePaymentMethod(ctx, paymentMethodID))
}

func (g *StripeGateway) GetSetupIntent(ctx context.Context, setupIntentID string) entities.Result[*stripe.SetupIntent] {
	return finish(g, "getSetupIntent", g.retrieveSetupIntent(ctx, setupIntentID))
}

func (g *StripeGateway) CreateLoginLink(ctx context.Context, stripeAccount string, redirectURL string) entities.Result[*stripe.LoginLink] {
	return finish(g, "createLoginLink", g.createLoginLink(ctx, stripeAccount, redirectURL))
}

func (g *StripeGateway) CancelPayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	return finish(g, "cancelPayment", g.cancelPaymentIntent(ctx, order.OrderID, order.StripeAccount))
}

// CapturePayment captures order.Amount of order.OrderID on order.StripeAccount.
func (g *StripeGateway) CapturePayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent] {
	return finish(g, "capturePayment", g.capturePaymentIntent(ctx, projectCapture(order), order.StripeAccount))
}

// CreateToken shares a platform customer's default card with a connected account.
func (g *StripeGateway) CreateToken(ctx context.Context, customer string, stripeAccount string) entities.Result[*stripe.Token] {
	return finish(g, "createToken", g.createToken(ctx, customer, stripeAccount))
}
