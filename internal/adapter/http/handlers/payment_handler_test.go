package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment_orchestrator/internal/adapter/http/handlers/mocks"
	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

type operationBody struct {
	HasError bool `json:"hasError"`
	Data     struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
	Err *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"err"`
	ErrorStep                   string `json:"errorStep"`
	Customer                    string `json:"customer"`
	CustomerForConnectedAccount string `json:"customerForConnectedAccount"`
	ReconciliationID            string `json:"reconciliationId"`
}

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIStripeGateway, *mocks.MockIOrphanRecordUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockIStripeGateway(ctrl)
	ledger := mocks.NewMockIOrphanRecordUseCase(ctrl)
	h := NewPaymentHandler(gateway, ledger)

	r := gin.New()
	r.POST("/v1/cards", h.AttachCard)
	r.POST("/v1/cards/attach", h.AttachCardToCustomer)
	r.DELETE("/v1/cards/:card_id", h.RemoveCard)
	r.POST("/v1/orders/pay", h.PayOrder)
	r.POST("/v1/orders/register", h.RegisterOrder)
	r.POST("/v1/orders/refund", h.RefundOrder)
	r.GET("/v1/orders/:order_id/status", h.GetOrderStatus)
	r.POST("/v1/payments", h.CreatePayment)
	r.POST("/v1/payments/:payment_intent_id/cancel", h.CancelPayment)
	r.POST("/v1/payments/:payment_intent_id/capture", h.CapturePayment)
	r.GET("/v1/payment-methods/:payment_method_id", h.GetPaymentMethod)
	r.GET("/v1/setup-intents/:setup_intent_id", h.GetSetupIntent)
	r.POST("/v1/accounts/:stripe_account/login-links", h.CreateLoginLink)
	r.POST("/v1/accounts/:stripe_account/tokens", h.CreateToken)
	return r, gateway, ledger
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) operationBody {
	t.Helper()
	var body operationBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentHandler_PayOrder(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t)

		w := do(r, http.MethodPost, "/v1/orders/pay", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing stripe account", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t)

		w := do(r, http.MethodPost, "/v1/orders/pay", `{"customer":"cus_1","amount":1000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)

		gateway.EXPECT().PayOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, o entities.Order) entities.Result[*stripe.PaymentIntent] {
			if o.Customer != "cus_1" || o.StripeAccount != "acct_1" || o.Amount != 1000 || o.Currency != "brl" {
				t.Fatalf("unexpected order: %+v", o)
			}
			return entities.Success(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded}).
				WithCustomer("cus_1").
				WithCustomerForConnectedAccount("cus_c1")
		})

		w := do(r, http.MethodPost, "/v1/orders/pay", `{"customer":"cus_1","stripeAccount":"acct_1","amount":1000,"currency":"brl"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decode(t, w)
		if body.HasError || body.Data.ID != "pi_1" || body.Data.Status != "succeeded" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Customer != "cus_1" || body.CustomerForConnectedAccount != "cus_c1" {
			t.Fatalf("unexpected correlation: %+v", body)
		}
	})

	t.Run("processor failure is recorded", func(t *testing.T) {
		r, gateway, ledger := newPaymentRouter(t)

		declined := &stripe.Error{Msg: "Your card was declined.", Code: stripe.ErrorCodeCardDeclined, HTTPStatusCode: http.StatusPaymentRequired}
		failed := entities.Failure[*stripe.PaymentIntent](entities.StepPaymentIntentsCreate, declined).
			WithCustomer("cus_1").
			WithCustomerForConnectedAccount("cus_c1")
		gateway.EXPECT().PayOrder(gomock.Any(), gomock.Any()).Return(failed)
		ledger.EXPECT().Track(gomock.Any(), "payOrder", "acct_1", gomock.Any()).
			Return(entities.OrphanRecord{ID: "rec-1"}, true, nil)

		w := do(r, http.MethodPost, "/v1/orders/pay", `{"customer":"cus_1","stripeAccount":"acct_1","amount":1000}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decode(t, w)
		if !body.HasError || body.ErrorStep != "paymentIntents.create" || body.ReconciliationID != "rec-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Err == nil || body.Err.Code != "card_declined" || body.Err.Message != "Your card was declined." {
			t.Fatalf("unexpected err: %+v", body.Err)
		}
		if body.Customer != "cus_1" || body.CustomerForConnectedAccount != "cus_c1" {
			t.Fatalf("unexpected correlation: %+v", body)
		}
	})

	t.Run("ledger failure keeps envelope", func(t *testing.T) {
		r, gateway, ledger := newPaymentRouter(t)

		failed := entities.Failure[*stripe.PaymentIntent](entities.StepCustomersCreate, errors.New("timeout")).WithCustomer("cus_1")
		gateway.EXPECT().PayOrder(gomock.Any(), gomock.Any()).Return(failed)
		ledger.EXPECT().Track(gomock.Any(), "payOrder", "acct_1", gomock.Any()).
			Return(entities.OrphanRecord{}, false, errors.New("ddb down"))

		w := do(r, http.MethodPost, "/v1/orders/pay", `{"customer":"cus_1","stripeAccount":"acct_1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decode(t, w)
		if body.ErrorStep != "customers.create" || body.ReconciliationID != "" || body.Customer != "cus_1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPaymentHandler_Composites(t *testing.T) {
	t.Run("registerOrder", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, o entities.Order) entities.Result[*stripe.PaymentIntent] {
			if o.PaymentMethodID != "pm_1" {
				t.Fatalf("expected pm_1, got %+v", o)
			}
			return entities.Success(&stripe.PaymentIntent{ID: "pi_2"})
		})

		w := do(r, http.MethodPost, "/v1/orders/register", `{"stripeAccount":"acct_1","payment_method_id":"pm_1"}`)
		if w.Code != http.StatusOK || decode(t, w).Data.ID != "pi_2" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("createPayment deleted customer", func(t *testing.T) {
		r, gateway, ledger := newPaymentRouter(t)
		failed := entities.Failure[*stripe.PaymentIntent](entities.StepCustomersRetrieve, fmt.Errorf("cus_c1: %w", entities.ErrCustomerDeleted)).
			WithCustomer("cus_1")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(failed)
		ledger.EXPECT().Track(gomock.Any(), "createPayment", "acct_1", gomock.Any()).Return(entities.OrphanRecord{ID: "rec-2"}, true, nil)

		w := do(r, http.MethodPost, "/v1/payments", `{"stripeAccount":"acct_1","connectedAccountCustomer":"cus_c1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decode(t, w); body.ReconciliationID != "rec-2" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("attachCard without account", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().AttachCard(gomock.Any(), gomock.Any()).
			Return(entities.Success(&stripe.SetupIntent{ID: "seti_1"}).WithCustomer("cus_1"))

		w := do(r, http.MethodPost, "/v1/cards", `{"customer":"cus_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body.Data.ID != "seti_1" || body.Customer != "cus_1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("attachCardToCustomer requires account", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t)

		w := do(r, http.MethodPost, "/v1/cards/attach", `{"payment_method_id":"pm_1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("attachCardToCustomer success", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().AttachCardToCustomer(gomock.Any(), gomock.Any()).
			Return(entities.Success(&stripe.PaymentMethod{ID: "pm_1"}).WithCustomerForConnectedAccount("cus_c1"))

		w := do(r, http.MethodPost, "/v1/cards/attach", `{"stripeAccount":"acct_1","payment_method_id":"pm_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_SingleCalls(t *testing.T) {
	t.Run("removeCard", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().RemoveCard(gomock.Any(), "pm_1").Return(entities.Success(&stripe.PaymentMethod{ID: "pm_1"}))

		if w := do(r, http.MethodDelete, "/v1/cards/pm_1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("getOrderStatus forwards stripe account", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().GetOrderStatus(gomock.Any(), entities.Order{OrderID: "pi_1", StripeAccount: "acct_9"}).
			Return(entities.Success(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusProcessing}))

		w := do(r, http.MethodGet, "/v1/orders/pi_1/status?stripe_account=acct_9", "")
		if w.Code != http.StatusOK || decode(t, w).Data.Status != "processing" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("refundOrder not found", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		missing := &stripe.Error{Msg: "No such charge", Code: stripe.ErrorCodeResourceMissing, HTTPStatusCode: http.StatusNotFound}
		gateway.EXPECT().RefundOrder(gomock.Any(), gomock.Any()).
			Return(entities.Failure[*stripe.Refund](entities.StepRefundsCreate, missing))

		w := do(r, http.MethodPost, "/v1/orders/refund", `{"charge":"ch_x","amount":100}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decode(t, w); body.ErrorStep != "refunds.create" || body.ReconciliationID != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("cancelPayment empty body", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().CancelPayment(gomock.Any(), entities.Order{OrderID: "pi_1"}).
			Return(entities.Success(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusCanceled}))

		if w := do(r, http.MethodPost, "/v1/payments/pi_1/cancel", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("capturePayment", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().CapturePayment(gomock.Any(), entities.Order{OrderID: "pi_1", StripeAccount: "acct_1", Amount: 700}).
			Return(entities.Success(&stripe.PaymentIntent{ID: "pi_1"}))

		if w := do(r, http.MethodPost, "/v1/payments/pi_1/capture", `{"stripeAccount":"acct_1","amount":700}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("getPaymentMethod and getSetupIntent", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().GetPaymentMethod(gomock.Any(), "pm_1").Return(entities.Success(&stripe.PaymentMethod{ID: "pm_1"}))
		gateway.EXPECT().GetSetupIntent(gomock.Any(), "seti_1").Return(entities.Success(&stripe.SetupIntent{ID: "seti_1"}))

		if w := do(r, http.MethodGet, "/v1/payment-methods/pm_1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := do(r, http.MethodGet, "/v1/setup-intents/seti_1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("createLoginLink", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().CreateLoginLink(gomock.Any(), "acct_1", "https://example.com/back").
			Return(entities.Success(&stripe.LoginLink{URL: "https://connect.stripe.com/express/x"}))

		if w := do(r, http.MethodPost, "/v1/accounts/acct_1/login-links", `{"redirect_url":"https://example.com/back"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("createToken requires customer", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t)

		if w := do(r, http.MethodPost, "/v1/accounts/acct_1/tokens", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("createToken", func(t *testing.T) {
		r, gateway, _ := newPaymentRouter(t)
		gateway.EXPECT().CreateToken(gomock.Any(), "cus_1", "acct_1").Return(entities.Success(&stripe.Token{ID: "tok_1"}))

		if w := do(r, http.MethodPost, "/v1/accounts/acct_1/tokens", `{"customer":"cus_1"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		out  entities.Outcome
		want int
	}{
		{"success", entities.Success(1), http.StatusOK},
		{"deleted customer", entities.Failure[int](entities.StepCustomersRetrieve, entities.ErrCustomerDeleted), http.StatusConflict},
		{"client not configured", entities.Failure[int](entities.StepCustomersRetrieve, usecase.ErrProcessorClientNotConfigured), http.StatusServiceUnavailable},
		{"stripe status", entities.Failure[int](entities.StepRefundsCreate, &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests}), http.StatusTooManyRequests},
		{"stripe without status", entities.Failure[int](entities.StepRefundsCreate, &stripe.Error{}), http.StatusBadGateway},
		{"transport error", entities.Failure[int](entities.StepRefundsCreate, errors.New("eof")), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.out); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
