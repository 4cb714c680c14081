package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_orchestrator/internal/adapter/http/handlers"
	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/usecase"
	mock_interfaces "payment_orchestrator/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockIProcessorClient(ctrl)
	repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)

	ledger := usecase.NewOrphanRecordUseCase(repo, nil)
	router := gin.New()
	registerRoutes(router,
		handlers.NewPaymentHandler(usecase.NewStripeGateway(client, nil), ledger),
		handlers.NewReconciliationHandler(ledger),
	)

	want := map[string]bool{
		"GET /v1/ping":                                  true,
		"POST /v1/cards":                                true,
		"POST /v1/cards/attach":                         true,
		"DELETE /v1/cards/:card_id":                     true,
		"POST /v1/orders/pay":                           true,
		"POST /v1/orders/register":                      true,
		"POST /v1/orders/refund":                        true,
		"GET /v1/orders/:order_id/status":               true,
		"POST /v1/payments":                             true,
		"POST /v1/payments/:payment_intent_id/cancel":   true,
		"POST /v1/payments/:payment_intent_id/capture":  true,
		"GET /v1/payment-methods/:payment_method_id":    true,
		"GET /v1/setup-intents/:setup_intent_id":        true,
		"POST /v1/accounts/:stripe_account/login-links": true,
		"POST /v1/accounts/:stripe_account/tokens":      true,
		"GET /v1/reconciliation":                        true,
		"GET /v1/reconciliation/:id":                    true,
	}
	for _, r := range router.Routes() {
		delete(want, r.Method+" "+r.Path)
	}
	if len(want) != 0 {
		t.Fatalf("missing routes: %v", want)
	}

	// End to end through the real gateway: the processor call is the only mock.
	client.EXPECT().RetrievePaymentIntent(gomock.Any(), "pi_1", gomock.Any()).
		Return(&stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/pi_1/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestPayOrderFailureIsReconciled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockIProcessorClient(ctrl)
	repo := mock_interfaces.NewMockIOrphanRecordRepository(ctrl)

	ledger := usecase.NewOrphanRecordUseCase(repo, nil)
	router := gin.New()
	registerRoutes(router,
		handlers.NewPaymentHandler(usecase.NewStripeGateway(client, nil), ledger),
		handlers.NewReconciliationHandler(ledger),
	)

	client.EXPECT().RetrieveCustomer(gomock.Any(), "cus_1", gomock.Any()).Return(&stripe.Customer{ID: "cus_1"}, nil)
	client.EXPECT().RetrieveCustomer(gomock.Any(), "cus_c1", gomock.Any()).
		Return(nil, &stripe.Error{Msg: "No such customer", HTTPStatusCode: http.StatusNotFound})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r entities.OrphanRecord) (entities.OrphanRecord, error) {
		if r.Operation != "payOrder" || r.Customer != "cus_1" || r.StripeAccount != "acct_1" || r.ErrorStep != entities.StepCustomersRetrieve {
			t.Fatalf("unexpected record: %+v", r)
		}
		return r, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/pay", strings.NewReader(`{"customer":"cus_1","connectedAccountCustomer":"cus_c1","stripeAccount":"acct_1","amount":100,"currency":"usd"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
