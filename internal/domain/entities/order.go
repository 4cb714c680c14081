package entities

// CustomerData is the creation payload used when a customer has to be created,
// either on the platform account or on a connected account.
type CustomerData struct {
	Email       string            `json:"email,omitempty"`
	Name        string            `json:"name,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AutomaticPaymentMethods mirrors the Stripe automatic_payment_methods object.
type AutomaticPaymentMethods struct {
	Enabled        bool   `json:"enabled"`
	AllowRedirects string `json:"allow_redirects,omitempty"`
}

// Order is the caller payload accepted by the gateway operations.
//
// It is deliberately wide: each operation reads only the fields it declares and
// forwards a projection of them. Anything else on the order stays local.
//
// Identifier spaces:
//   - Customer is a platform customer id.
//   - ConnectedAccountCustomer is a customer id on StripeAccount; it is unrelated
//     to Customer as far as the processor is concerned.
//   - PaymentMethodID is a payment method already usable on StripeAccount.
//   - PaymentMethod is a platform payment method to be cloned onto StripeAccount.
type Order struct {
	Customer                 string        `json:"customer,omitempty"`
	ConnectedAccountCustomer string        `json:"connectedAccountCustomer,omitempty"`
	StripeAccount            string        `json:"stripeAccount,omitempty"`
	CustomerData             *CustomerData `json:"customerData,omitempty"`

	PaymentMethodID    string   `json:"payment_method_id,omitempty"`
	PaymentMethod      string   `json:"payment_method,omitempty"`
	PaymentMethodTypes []string `json:"payment_method_types,omitempty"`

	Amount                  int64                    `json:"amount,omitempty"`
	Currency                string                   `json:"currency,omitempty"`
	OffSession              *bool                    `json:"off_session,omitempty"`
	Confirm                 *bool                    `json:"confirm,omitempty"`
	Description             string                   `json:"description,omitempty"`
	SetupFutureUsage        string                   `json:"setup_future_usage,omitempty"`
	AutomaticPaymentMethods *AutomaticPaymentMethods `json:"automatic_payment_methods,omitempty"`
	CaptureMethod           string                   `json:"capture_method,omitempty"`

	Charge        string `json:"charge,omitempty"`
	PaymentIntent string `json:"payment_intent,omitempty"`
	OrderID       string `json:"orderId,omitempty"`

	// Metadata is caller-side bookkeeping. No operation forwards it.
	Metadata map[string]string `json:"metadata,omitempty"`
}
