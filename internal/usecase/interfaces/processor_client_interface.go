package interfaces

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// IProcessorClient is the capability set the gateway consumes from the payment processor.
//
// Every call is a single request/response against Stripe. Connected-account scoping
// travels inside the params (SetStripeAccount). Errors are returned as produced by the
// processor; callers must not assume a particular shape.
type IProcessorClient interface {
	RetrieveCustomer(ctx context.Context, id string, params *stripe.CustomerRetrieveParams) (*stripe.Customer, error)
	CreateCustomer(ctx context.Context, params *stripe.CustomerCreateParams) (*stripe.Customer, error)

	CreateSetupIntent(ctx context.Context, params *stripe.SetupIntentCreateParams) (*stripe.SetupIntent, error)
	RetrieveSetupIntent(ctx context.Context, id string, params *stripe.SetupIntentRetrieveParams) (*stripe.SetupIntent, error)

	CreatePaymentMethod(ctx context.Context, params *stripe.PaymentMethodCreateParams) (*stripe.PaymentMethod, error)
	AttachPaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodAttachParams) (*stripe.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodDetachParams) (*stripe.PaymentMethod, error)
	RetrievePaymentMethod(ctx context.Context, id string, params *stripe.PaymentMethodRetrieveParams) (*stripe.PaymentMethod, error)

	CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error)
	CapturePaymentIntent(ctx context.Context, id string, params *stripe.PaymentIntentCaptureParams) (*stripe.PaymentIntent, error)

	CreateRefund(ctx context.Context, params *stripe.RefundCreateParams) (*stripe.Refund, error)
	CreateLoginLink(ctx context.Context, params *stripe.LoginLinkCreateParams) (*stripe.LoginLink, error)
	CreateToken(ctx context.Context, params *stripe.TokenCreateParams) (*stripe.Token, error)
}
