package usecase

import (
	"context"
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// call runs one processor capability and converts its outcome into an envelope
// tagged with step. The error is kept verbatim and never retried.
func call[T any](g *StripeGateway, step entities.Step, fields []zap.Field, fn func() (T, error)) entities.Result[T] {
	fields = append(fields, zap.String("step", string(step)))
	if g.client == nil {
		g.logger.Error("processor call skipped", fields...)
		return entities.Failure[T](step, ErrProcessorClientNotConfigured)
	}

	g.logger.Debug("processor call start", fields...)
	data, err := fn()
	if err != nil {
		g.logger.Warn("processor call failed", append(fields, zap.Error(err))...)
		return entities.Failure[T](step, err)
	}
	g.logger.Debug("processor call success", fields...)
	return entities.Success(data)
}

func scoped(stripeAccount string, p interface{ SetStripeAccount(string) }) {
	if stripeAccount != "" {
		p.SetStripeAccount(stripeAccount)
	}
}

func (g *StripeGateway) retrieveCustomer(ctx context.Context, customerID string) entities.Result[*stripe.Customer] {
	return call(g, entities.StepCustomersRetrieve, []zap.Field{zap.String("customer", customerID)}, func() (*stripe.Customer, error) {
		return g.client.RetrieveCustomer(ctx, customerID, &stripe.CustomerRetrieveParams{})
	})
}

func (g *StripeGateway) retrieveConnectedAccountCustomer(ctx context.Context, customerID string, stripeAccount string) entities.Result[*stripe.Customer] {
	fields := []zap.Field{zap.String("customer", customerID), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepCustomersRetrieve, fields, func() (*stripe.Customer, error) {
		params := &stripe.CustomerRetrieveParams{}
		params.SetStripeAccount(stripeAccount)
		return g.client.RetrieveCustomer(ctx, customerID, params)
	})
}

func (g *StripeGateway) createCustomer(ctx context.Context, data *entities.CustomerData) entities.Result[*stripe.Customer] {
	return call(g, entities.StepCustomersCreate, nil, func() (*stripe.Customer, error) {
		return g.client.CreateCustomer(ctx, customerCreateParams(data))
	})
}

func (g *StripeGateway) createConnectedAccountCustomer(ctx context.Context, data *entities.CustomerData, stripeAccount string) entities.Result[*stripe.Customer] {
	return call(g, entities.StepCustomersCreate, []zap.Field{zap.String("stripe_account", stripeAccount)}, func() (*stripe.Customer, error) {
		params := customerCreateParams(data)
		params.SetStripeAccount(stripeAccount)
		return g.client.CreateCustomer(ctx, params)
	})
}

func (g *StripeGateway) createSetupIntent(ctx context.Context, p setupIntentProjection) entities.Result[*stripe.SetupIntent] {
	return call(g, entities.StepSetupIntentsCreate, []zap.Field{zap.String("customer", p.Customer)}, func() (*stripe.SetupIntent, error) {
		return g.client.CreateSetupIntent(ctx, p.params())
	})
}

func (g *StripeGateway) retrieveSetupIntent(ctx context.Context, setupIntentID string) entities.Result[*stripe.SetupIntent] {
	return call(g, entities.StepSetupIntentsRetrieve, []zap.Field{zap.String("setup_intent", setupIntentID)}, func() (*stripe.SetupIntent, error) {
		return g.client.RetrieveSetupIntent(ctx, setupIntentID, &stripe.SetupIntentRetrieveParams{})
	})
}

func (g *StripeGateway) createPaymentMethod(ctx context.Context, p paymentMethodProjection, stripeAccount string) entities.Result[*stripe.PaymentMethod] {
	fields := []zap.Field{zap.String("customer", p.Customer), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepPaymentMethodsCreate, fields, func() (*stripe.PaymentMethod, error) {
		params := p.params()
		scoped(stripeAccount, params)
		return g.client.CreatePaymentMethod(ctx, params)
	})
}

func (g *StripeGateway) attachPaymentMethod(ctx context.Context, p attachProjection, stripeAccount string) entities.Result[*stripe.PaymentMethod] {
	fields := []zap.Field{zap.String("payment_method", p.PaymentMethodID), zap.String("customer", p.Customer), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepPaymentMethodsAttach, fields, func() (*stripe.PaymentMethod, error) {
		params := p.params()
		scoped(stripeAccount, params)
		return g.client.AttachPaymentMethod(ctx, p.PaymentMethodID, params)
	})
}

func (g *StripeGateway) detachPaymentMethod(ctx context.Context, paymentMethodID string) entities.Result[*stripe.PaymentMethod] {
	return call(g, entities.StepPaymentMethodsDetach, []zap.Field{zap.String("payment_method", paymentMethodID)}, func() (*stripe.PaymentMethod, error) {
		return g.client.DetachPaymentMethod(ctx, paymentMethodID, &stripe.PaymentMethodDetachParams{})
	})
}

func (g *StripeGateway) retrievePaymentMethod(ctx context.Context, paymentMethodID string) entities.Result[*stripe.PaymentMethod] {
	return call(g, entities.StepPaymentMethodsRetrieve, []zap.Field{zap.String("payment_method", paymentMethodID)}, func() (*stripe.PaymentMethod, error) {
		return g.client.RetrievePaymentMethod(ctx, paymentMethodID, &stripe.PaymentMethodRetrieveParams{})
	})
}

func (g *StripeGateway) createPaymentIntent(ctx context.Context, params *stripe.PaymentIntentCreateParams, stripeAccount string) entities.Result[*stripe.PaymentIntent] {
	return call(g, entities.StepPaymentIntentsCreate, []zap.Field{zap.String("stripe_account", stripeAccount)}, func() (*stripe.PaymentIntent, error) {
		scoped(stripeAccount, params)
		return g.client.CreatePaymentIntent(ctx, params)
	})
}

func (g *StripeGateway) retrievePaymentIntent(ctx context.Context, paymentIntentID string) entities.Result[*stripe.PaymentIntent] {
	return call(g, entities.StepPaymentIntentsRetrieve, []zap.Field{zap.String("payment_intent", paymentIntentID)}, func() (*stripe.PaymentIntent, error) {
		return g.client.RetrievePaymentIntent(ctx, paymentIntentID, &stripe.PaymentIntentRetrieveParams{})
	})
}

func (g *StripeGateway) retrieveConnectedAccountPaymentIntent(ctx context.Context, paymentIntentID string, stripeAccount string) entities.Result[*stripe.PaymentIntent] {
	fields := []zap.Field{zap.String("payment_intent", paymentIntentID), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepPaymentIntentsRetrieve, fields, func() (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentRetrieveParams{}
		params.SetStripeAccount(stripeAccount)
		return g.client.RetrievePaymentIntent(ctx, paymentIntentID, params)
	})
}

func (g *StripeGateway) cancelPaymentIntent(ctx context.Context, paymentIntentID string, stripeAccount string) entities.Result[*stripe.PaymentIntent] {
	fields := []zap.Field{zap.String("payment_intent", paymentIntentID), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepPaymentIntentsCancel, fields, func() (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentCancelParams{}
		scoped(stripeAccount, params)
		return g.client.CancelPaymentIntent(ctx, paymentIntentID, params)
	})
}

func (g *StripeGateway) capturePaymentIntent(ctx context.Context, p captureProjection, stripeAccount string) entities.Result[*stripe.PaymentIntent] {
	fields := []zap.Field{zap.String("payment_intent", p.PaymentIntentID), zap.Int64("amount_to_capture", p.AmountToCapture), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepPaymentIntentsCapture, fields, func() (*stripe.PaymentIntent, error) {
		params := p.params()
		scoped(stripeAccount, params)
		return g.client.CapturePaymentIntent(ctx, p.PaymentIntentID, params)
	})
}

func (g *StripeGateway) createRefund(ctx context.Context, p refundProjection, stripeAccount string) entities.Result[*stripe.Refund] {
	fields := []zap.Field{zap.String("charge", p.Charge), zap.String("payment_intent", p.PaymentIntent), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepRefundsCreate, fields, func() (*stripe.Refund, error) {
		params := p.params()
		scoped(stripeAccount, params)
		return g.client.CreateRefund(ctx, params)
	})
}

func (g *StripeGateway) createLoginLink(ctx context.Context, stripeAccount string, redirectURL string) entities.Result[*stripe.LoginLink] {
	return call(g, entities.StepAccountsCreateLoginLink, []zap.Field{zap.String("stripe_account", stripeAccount)}, func() (*stripe.LoginLink, error) {
		params := &stripe.LoginLinkCreateParams{Account: stripe.String(stripeAccount)}
		if redirectURL != "" {
			params.AddExtra("redirect_url", redirectURL)
		}
		return g.client.CreateLoginLink(ctx, params)
	})
}

func (g *StripeGateway) createToken(ctx context.Context, customer string, stripeAccount string) entities.Result[*stripe.Token] {
	fields := []zap.Field{zap.String("customer", customer), zap.String("stripe_account", stripeAccount)}
	return call(g, entities.StepTokensCreate, fields, func() (*stripe.Token, error) {
		params := &stripe.TokenCreateParams{Customer: stripe.String(customer)}
		scoped(stripeAccount, params)
		return g.client.CreateToken(ctx, params)
	})
}
