package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOrderRequest_ToOrder(t *testing.T) {
	var r OrderRequest
	body := `{"customer":" cus_1 ","connectedAccountCustomer":"cus_c1","stripeAccount":" acct_1","payment_method_id":"pm_1 ","amount":1000,"currency":"brl","orderId":"o-1","metadata":{"k":"v"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	o := r.ToOrder()
	if o.Customer != "cus_1" || o.StripeAccount != "acct_1" || o.PaymentMethodID != "pm_1" {
		t.Fatalf("expected trimmed ids, got %+v", o)
	}
	if o.ConnectedAccountCustomer != "cus_c1" || o.Amount != 1000 || o.Currency != "brl" || o.OrderID != "o-1" {
		t.Fatalf("unexpected mapped fields: %+v", o)
	}
	if o.Metadata["k"] != "v" {
		t.Fatalf("expected metadata kept on order, got %+v", o.Metadata)
	}
}

func TestOrderRequest_ValidateConnected(t *testing.T) {
	if err := (OrderRequest{}).ValidateConnected(); !errors.Is(err, ErrMissingStripeAccount) {
		t.Fatalf("expected ErrMissingStripeAccount, got %v", err)
	}

	var r OrderRequest
	r.StripeAccount = "acct_1"
	if err := r.ValidateConnected(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentActionRequest_ToOrder(t *testing.T) {
	if _, err := (PaymentActionRequest{}).ToOrder(" "); !errors.Is(err, ErrMissingOrderID) {
		t.Fatalf("expected ErrMissingOrderID, got %v", err)
	}

	o, err := PaymentActionRequest{StripeAccount: " acct_1 ", Amount: 300}.ToOrder("pi_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.OrderID != "pi_1" || o.StripeAccount != "acct_1" || o.Amount != 300 {
		t.Fatalf("unexpected order: %+v", o)
	}
}
