package usecase

import (
	"payment_orchestrator/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
)

// Projections are the only path from a caller Order to processor params. Each one
// names exactly the fields an operation may forward; the rest of the order never
// leaves this package.

type setupIntentProjection struct {
	Customer           string
	PaymentMethodTypes []string
}

func projectSetupIntent(o entities.Order, customer string) setupIntentProjection {
	return setupIntentProjection{Customer: customer, PaymentMethodTypes: o.PaymentMethodTypes}
}

func (p setupIntentProjection) params() *stripe.SetupIntentCreateParams {
	return &stripe.SetupIntentCreateParams{
		Customer:           optString(p.Customer),
		PaymentMethodTypes: optStrings(p.PaymentMethodTypes),
	}
}

type paymentMethodProjection struct {
	Customer      string
	PaymentMethod string
}

func projectPaymentMethod(o entities.Order, customer string) paymentMethodProjection {
	return paymentMethodProjection{Customer: customer, PaymentMethod: o.PaymentMethod}
}

func (p paymentMethodProjection) params() *stripe.PaymentMethodCreateParams {
	return &stripe.PaymentMethodCreateParams{
		Customer:      optString(p.Customer),
		PaymentMethod: optString(p.PaymentMethod),
	}
}

type attachProjection struct {
	PaymentMethodID string
	Customer        string
}

func projectAttach(o entities.Order, customer string) attachProjection {
	return attachProjection{PaymentMethodID: o.PaymentMethodID, Customer: customer}
}

func (p attachProjection) params() *stripe.PaymentMethodAttachParams {
	return &stripe.PaymentMethodAttachParams{Customer: optString(p.Customer)}
}

type payOrderProjection struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
	OffSession         *bool
	Confirm            *bool
	Description        string
	PaymentMethod      string
	Customer           string
}

// projectPayOrder overrides customer with the connected-account customer and
// payment_method with the bound identifier.
func projectPayOrder(o entities.Order, connectedCustomer string, paymentMethod string) payOrderProjection {
	return payOrderProjection{
		Amount:             o.Amount,
		Currency:           o.Currency,
		PaymentMethodTypes: o.PaymentMethodTypes,
		OffSession:         o.OffSession,
		Confirm:            o.Confirm,
		Description:        o.Description,
		PaymentMethod:      paymentMethod,
		Customer:           connectedCustomer,
	}
}

func (p payOrderProjection) params() *stripe.PaymentIntentCreateParams {
	return &stripe.PaymentIntentCreateParams{
		Amount:             optInt64(p.Amount),
		Currency:           optString(p.Currency),
		PaymentMethodTypes: optStrings(p.PaymentMethodTypes),
		OffSession:         p.OffSession,
		Confirm:            p.Confirm,
		Description:        optString(p.Description),
		PaymentMethod:      optString(p.PaymentMethod),
		Customer:           optString(p.Customer),
	}
}

type registerOrderProjection struct {
	Amount                  int64
	Currency                string
	SetupFutureUsage        string
	AutomaticPaymentMethods *entities.AutomaticPaymentMethods
	Description             string
	Customer                string
}

func projectRegisterOrder(o entities.Order, connectedCustomer string) registerOrderProjection {
	return registerOrderProjection{
		Amount:                  o.Amount,
		Currency:                o.Currency,
		SetupFutureUsage:        o.SetupFutureUsage,
		AutomaticPaymentMethods: o.AutomaticPaymentMethods,
		Description:             o.Description,
		Customer:                connectedCustomer,
	}
}

func (p registerOrderProjection) params() *stripe.PaymentIntentCreateParams {
	return &stripe.PaymentIntentCreateParams{
		Amount:                  optInt64(p.Amount),
		Currency:                optString(p.Currency),
		SetupFutureUsage:        optString(p.SetupFutureUsage),
		AutomaticPaymentMethods: automaticPaymentMethodsParams(p.AutomaticPaymentMethods),
		Description:             optString(p.Description),
		Customer:                optString(p.Customer),
	}
}

type createPaymentProjection struct {
	Amount                  int64
	Currency                string
	AutomaticPaymentMethods *entities.AutomaticPaymentMethods
	Description             string
	CaptureMethod           string
	Customer                string
}

func projectCreatePayment(o entities.Order, connectedCustomer string) createPaymentProjection {
	return createPaymentProjection{
		Amount:                  o.Amount,
		Currency:                o.Currency,
		AutomaticPaymentMethods: o.AutomaticPaymentMethods,
		Description:             o.Description,
		CaptureMethod:           o.CaptureMethod,
		Customer:                connectedCustomer,
	}
}

func (p createPaymentProjection) params() *stripe.PaymentIntentCreateParams {
	return &stripe.PaymentIntentCreateParams{
		Amount:                  optInt64(p.Amount),
		Currency:                optString(p.Currency),
		AutomaticPaymentMethods: automaticPaymentMethodsParams(p.AutomaticPaymentMethods),
		Description:             optString(p.Description),
		CaptureMethod:           optString(p.CaptureMethod),
		Customer:                optString(p.Customer),
	}
}

type refundProjection struct {
	Charge        string
	PaymentIntent string
	Amount        int64
}

func projectRefund(o entities.Order) refundProjection {
	return refundProjection{Charge: o.Charge, PaymentIntent: o.PaymentIntent, Amount: o.Amount}
}

func (p refundProjection) params() *stripe.RefundCreateParams {
	return &stripe.RefundCreateParams{
		Charge:        optString(p.Charge),
		PaymentIntent: optString(p.PaymentIntent),
		Amount:        optInt64(p.Amount),
	}
}

type captureProjection struct {
	PaymentIntentID string
	AmountToCapture int64
}

func projectCapture(o entities.Order) captureProjection {
	return captureProjection{PaymentIntentID: o.OrderID, AmountToCapture: o.Amount}
}

func (p captureProjection) params() *stripe.PaymentIntentCaptureParams {
	return &stripe.PaymentIntentCaptureParams{AmountToCapture: optInt64(p.AmountToCapture)}
}

func customerCreateParams(data *entities.CustomerData) *stripe.CustomerCreateParams {
	params := &stripe.CustomerCreateParams{}
	if data == nil {
		return params
	}
	params.Email = optString(data.Email)
	params.Name = optString(data.Name)
	params.Phone = optString(data.Phone)
	params.Description = optString(data.Description)
	if len(data.Metadata) > 0 {
		params.Metadata = data.Metadata
	}
	return params
}

func automaticPaymentMethodsParams(a *entities.AutomaticPaymentMethods) *stripe.PaymentIntentCreateAutomaticPaymentMethodsParams {
	if a == nil {
		return nil
	}
	return &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
		Enabled:        stripe.Bool(a.Enabled),
		AllowRedirects: optString(a.AllowRedirects),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return stripe.String(s)
}

func optStrings(s []string) []*string {
	if len(s) == 0 {
		return nil
	}
	return stripe.StringSlice(s)
}

func optInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return stripe.Int64(v)
}
