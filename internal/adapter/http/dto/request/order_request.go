package request

import (
	"errors"
	"strings"

	"payment_orchestrator/internal/domain/entities"
)

var (
	ErrMissingStripeAccount = errors.New("stripeAccount is required")
	ErrMissingOrderID       = errors.New("orderId is required")
)

// OrderRequest is the JSON body accepted by the card, order and payment routes.
// Field names follow entities.Order.
type OrderRequest struct {
	entities.Order
}

// ToOrder trims identifier fields and returns the order handed to the gateway.
func (r OrderRequest) ToOrder() entities.Order {
	o := r.Order
	o.Customer = strings.TrimSpace(o.Customer)
	o.ConnectedAccountCustomer = strings.TrimSpace(o.ConnectedAccountCustomer)
	o.StripeAccount = strings.TrimSpace(o.StripeAccount)
	o.PaymentMethodID = strings.TrimSpace(o.PaymentMethodID)
	o.PaymentMethod = strings.TrimSpace(o.PaymentMethod)
	o.Charge = strings.TrimSpace(o.Charge)
	o.PaymentIntent = strings.TrimSpace(o.PaymentIntent)
	o.OrderID = strings.TrimSpace(o.OrderID)
	return o
}

// ValidateConnected rejects orders that target no connected account.
func (r OrderRequest) ValidateConnected() error {
	if strings.TrimSpace(r.StripeAccount) == "" {
		return ErrMissingStripeAccount
	}
	return nil
}

// PaymentActionRequest is the optional body of the cancel and capture routes.
type PaymentActionRequest struct {
	StripeAccount string `json:"stripeAccount"`
	Amount        int64  `json:"amount"`
}

// ToOrder binds the path payment intent id to the body fields.
func (r PaymentActionRequest) ToOrder(paymentIntentID string) (entities.Order, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return entities.Order{}, ErrMissingOrderID
	}
	return entities.Order{
		OrderID:       paymentIntentID,
		StripeAccount: strings.TrimSpace(r.StripeAccount),
		Amount:        r.Amount,
	}, nil
}

type LoginLinkRequest struct {
	RedirectURL string `json:"redirect_url"`
}

type TokenRequest struct {
	Customer string `json:"customer" binding:"required"`
}
