package usecase

import (
	"context"
	"errors"
	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

var (
	ErrProcessorClientNotConfigured = errors.New("processor client not configured")
)

// IStripeGateway exposes the payment operations offered to callers.
//
// Composite operations chain several processor calls and stop at the first
// failure; single-call operations wrap exactly one call. Every operation returns
// an envelope, never a bare error:
//   - AttachCard / AttachCardToCustomer bind a card to a customer.
//   - PayOrder / RegisterOrder / CreatePayment create a payment intent on a
//     connected account for a mirrored customer.
//   - the rest are pass-throughs tagged with their step name.

type IStripeGateway interface {
	AttachCard(ctx context.Context, order entities.Order) entities.Result[*stripe.SetupIntent]
	RemoveCard(ctx context.Context, cardID string) entities.Result[*stripe.PaymentMethod]
	PayOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	RegisterOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	CreatePayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	GetOrderStatus(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	GetPaymentMethod(ctx context.Context, paymentMethodID string) entities.Result[*stripe.PaymentMethod]
	GetSetupIntent(ctx context.Context, setupIntentID string) entities.Result[*stripe.SetupIntent]
	RefundOrder(ctx context.Context, order entities.Order) entities.Result[*stripe.Refund]
	CreateLoginLink(ctx context.Context, stripeAccount string, redirectURL string) entities.Result[*stripe.LoginLink]
	CancelPayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	CapturePayment(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentIntent]
	AttachCardToCustomer(ctx context.Context, order entities.Order) entities.Result[*stripe.PaymentMethod]
	CreateToken(ctx context.Context, customer string, stripeAccount string) entities.Result[*stripe.Token]
}

// StripeGateway sequences processor calls into the operations of IStripeGateway.
//
// It holds no mutable state besides the client handle, so a single instance is
// shared by concurrent requests.
type StripeGateway struct {
	client interfaces.IProcessorClient
	logger *zap.Logger
}

var _ IStripeGateway = (*StripeGateway)(nil)

func NewStripeGateway(client interfaces.IProcessorClient, logger *zap.Logger) *StripeGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StripeGateway{client: client, logger: logger.Named("stripe_gateway")}
}

// finish logs the outcome of an operation and hands the envelope back untouched.
func finish[T any](g *StripeGateway, operation string, r entities.Result[T]) entities.Result[T] {
	c := r.Correlation()
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("customer", c.Customer),
		zap.String("customer_for_connected_account", c.CustomerForConnectedAccount),
	}
	if r.HasError() {
		g.logger.Warn("operation failed", append(fields, zap.String("error_step", string(r.ErrorStep())), zap.Error(r.Err()))...)
		return r
	}
	g.logger.Info("operation succeeded", fields...)
	return r
}
