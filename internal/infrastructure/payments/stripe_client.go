package payments

import (
	"context"
	"errors"
	"payment_orchestrator/internal/usecase/interfaces"
	"strings"

	"github.com/stripe/stripe-go/v82"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeClient adapts the stripe-go client to IProcessorClient.
//
// Each method is one API request; retries and backoff are left to stripe-go's
// own backend configuration.
type StripeClient struct {
	api *stripe.Client
}

var _ interfaces.IProcessorClient = (*StripeClient)(nil)

// NewStripeClient builds the client handle. A blank secret key is a
// configuration error and is reported before any request is made.
func NewStripeClient(secretKey string) (*StripeClient, error) {
	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	return &StripeClient{api: stripe.NewClient(secretKey, nil)}, nil
}

func (c *StripeClient) RetrieveCustomer(ctx context.Context, id string, params *stripe.CustomerRetrieveParams) (*stripe.Customer, error) {
	return c.api.V1Customers.Retrieve(ctx, id, params)
}

func (c *StripeClient) CreateCustomer(ctx context.Context, params *stripe.CustomerCreateParams) (*stripe.Customer, error) {
	return c.api.V1Customers.Create(ctx, params)
}

func (c *StripeClient) CreateSetupIntent(ctx context.Context, params *stripe.SetupIntentCreateParams) (*stripe.SetupIntent, error) {
	return c.api.V1SetupIntents.Create(ctx, params)
}

func (c *StripeClient) RetrieveSetupIntent(ctx context.Context, id string, params *stripe.SetupIntentRetrieveParams) (*stripe.SetupIntent, error) {
	return c.api.V1SetupIntents.Retrieve(ctx, id, params)
}

func (c *StripeClient) CreatePaymentMethod(ctx context.Context, params *stripe.PaymentMethodCreateParams) (*stripe.PaymentMethod, error) {
	return c.api.V1PaymentMethods.Create(ctx, params)
}

func (c *StripeClient) AttachPaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodAttachParams) (*stripe.PaymentMethod, error) {
	return c.api.V1PaymentMethods.Attach(ctx, id, params)
}

func (c *StripeClient) DetachPaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodDetachParams) (*stripe.PaymentMethod, error) {
	return c.api.V1PaymentMethods.Detach(ctx, id, params)
}

func (c *StripeClient) RetrievePaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodRetrieveParams) (*stripe.PaymentMethod, error) {
	return c.api.V1PaymentMethods.Retrieve(ctx, id, params)
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
	return c.api.V1PaymentIntents.Create(ctx, params)
}

func (c *StripeClient) RetrievePaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error) {
	return c.api.V1PaymentIntents.Retrieve(ctx, id, params)
}

func (c *StripeClient) CancelPaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error) {
	return c.api.V1PaymentIntents.Cancel(ctx, id, params)
}

func (c *StripeClient) CapturePaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentCaptureParams) (*stripe.PaymentIntent, error) {
	return c.api.V1PaymentIntents.Capture(ctx, id, params)
}

func (c *StripeClient) CreateRefund(ctx context.Context, params *stripe.RefundCreateParams) (*stripe.Refund, error) {
	return c.api.V1Refunds.Create(ctx, params)
}

func (c *StripeClient) CreateLoginLink(ctx context.Context, params *stripe.LoginLinkCreateParams) (*stripe.LoginLink, error) {
	return c.api.V1LoginLinks.Create(ctx, params)
}

func (c *StripeClient) CreateToken(ctx context.Context, params *stripe.TokenCreateParams) (*stripe.Token, error) {
	return c.api.V1Tokens.Create(ctx, params)
}
