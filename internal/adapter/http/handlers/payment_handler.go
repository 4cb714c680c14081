package handlers

import (
	"errors"
	"net/http"
	"strings"

	"payment_orchestrator/internal/adapter/http/dto/request"
	response "payment_orchestrator/internal/adapter/http/dto/response"
	"payment_orchestrator/internal/domain/entities"
	"payment_orchestrator/internal/infrastructure/logger"
	"payment_orchestrator/internal/usecase"
	"payment_orchestrator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// PaymentHandler exposes the gateway operations over HTTP.
//
// Composite operations that fail after resolving customers are recorded in the
// reconciliation ledger; the entry id is returned as reconciliationId.

type PaymentHandler struct {
	gateway usecase.IStripeGateway
	ledger  usecase.IOrphanRecordUseCase
}

func NewPaymentHandler(gateway usecase.IStripeGateway, ledger usecase.IOrphanRecordUseCase) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, ledger: ledger}
}

// AttachCard godoc
// @Summary      Create a setup intent for a platform customer
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /cards [post]
func (h *PaymentHandler) AttachCard(c *gin.Context) {
	order, ok := bindOrder(c, false)
	if !ok {
		return
	}
	res := h.gateway.AttachCard(c.Request.Context(), order)
	writeResult(c, res, h.track(c, "attachCard", order.StripeAccount, res))
}

// AttachCardToCustomer godoc
// @Summary      Attach a payment method to a connected-account customer
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /cards/attach [post]
func (h *PaymentHandler) AttachCardToCustomer(c *gin.Context) {
	order, ok := bindOrder(c, true)
	if !ok {
		return
	}
	res := h.gateway.AttachCardToCustomer(c.Request.Context(), order)
	writeResult(c, res, h.track(c, "attachCardToCustomer", order.StripeAccount, res))
}

// RemoveCard godoc
// @Summary      Detach a payment method
// @Tags         cards
// @Produce      json
// @Param        card_id  path      string  true  "Payment method id"
// @Success      200      {object}  response.OperationResponse
// @Failure      502      {object}  response.OperationResponse
// @Router       /cards/{card_id} [delete]
func (h *PaymentHandler) RemoveCard(c *gin.Context) {
	cardID, ok := pathID(c, "card_id")
	if !ok {
		return
	}
	writeResult(c, h.gateway.RemoveCard(c.Request.Context(), cardID), "")
}

// PayOrder godoc
// @Summary      Charge an order on a connected account
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /orders/pay [post]
func (h *PaymentHandler) PayOrder(c *gin.Context) {
	order, ok := bindOrder(c, true)
	if !ok {
		return
	}
	res := h.gateway.PayOrder(c.Request.Context(), order)
	writeResult(c, res, h.track(c, "payOrder", order.StripeAccount, res))
}

// RegisterOrder godoc
// @Summary      Register an order with an existing connected-account payment method
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /orders/register [post]
func (h *PaymentHandler) RegisterOrder(c *gin.Context) {
	order, ok := bindOrder(c, true)
	if !ok {
		return
	}
	res := h.gateway.RegisterOrder(c.Request.Context(), order)
	writeResult(c, res, h.track(c, "registerOrder", order.StripeAccount, res))
}

// RefundOrder godoc
// @Summary      Refund a charge or payment intent
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /orders/refund [post]
func (h *PaymentHandler) RefundOrder(c *gin.Context) {
	order, ok := bindOrder(c, false)
	if !ok {
		return
	}
	writeResult(c, h.gateway.RefundOrder(c.Request.Context(), order), "")
}

// GetOrderStatus godoc
// @Summary      Retrieve a payment intent
// @Tags         orders
// @Produce      json
// @Param        order_id        path   string  true   "Payment intent id"
// @Param        stripe_account  query  string  false  "Connected account"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /orders/{order_id}/status [get]
func (h *PaymentHandler) GetOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order := entities.Order{OrderID: orderID, StripeAccount: strings.TrimSpace(c.Query("stripe_account"))}
	writeResult(c, h.gateway.GetOrderStatus(c.Request.Context(), order), "")
}

// CreatePayment godoc
// @Summary      Create a payment intent with automatic payment methods
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order"
// @Success      200    {object}  response.OperationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  response.OperationResponse
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	order, ok := bindOrder(c, true)
	if !ok {
		return
	}
	res := h.gateway.CreatePayment(c.Request.Context(), order)
	writeResult(c, res, h.track(c, "createPayment", order.StripeAccount, res))
}

// CancelPayment godoc
// @Summary      Cancel a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_intent_id  path  string                        true   "Payment intent id"
// @Param        body               body  request.PaymentActionRequest  false  "Scope"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /payments/{payment_intent_id}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	order, ok := bindPaymentAction(c)
	if !ok {
		return
	}
	writeResult(c, h.gateway.CancelPayment(c.Request.Context(), order), "")
}

// CapturePayment godoc
// @Summary      Capture an authorized payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_intent_id  path  string                        true  "Payment intent id"
// @Param        body               body  request.PaymentActionRequest  true  "Scope and amount"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /payments/{payment_intent_id}/capture [post]
func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	order, ok := bindPaymentAction(c)
	if !ok {
		return
	}
	writeResult(c, h.gateway.CapturePayment(c.Request.Context(), order), "")
}

// GetPaymentMethod godoc
// @Summary      Retrieve a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        payment_method_id  path  string  true  "Payment method id"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /payment-methods/{payment_method_id} [get]
func (h *PaymentHandler) GetPaymentMethod(c *gin.Context) {
	id, ok := pathID(c, "payment_method_id")
	if !ok {
		return
	}
	writeResult(c, h.gateway.GetPaymentMethod(c.Request.Context(), id), "")
}

// GetSetupIntent godoc
// @Summary      Retrieve a setup intent
// @Tags         setup-intents
// @Produce      json
// @Param        setup_intent_id  path  string  true  "Setup intent id"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /setup-intents/{setup_intent_id} [get]
func (h *PaymentHandler) GetSetupIntent(c *gin.Context) {
	id, ok := pathID(c, "setup_intent_id")
	if !ok {
		return
	}
	writeResult(c, h.gateway.GetSetupIntent(c.Request.Context(), id), "")
}

// CreateLoginLink godoc
// @Summary      Create an Express dashboard login link
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        stripe_account  path  string                    true   "Connected account"
// @Param        body            body  request.LoginLinkRequest  false  "Redirect"
// @Success      200  {object}  response.OperationResponse
// @Failure      502  {object}  response.OperationResponse
// @Router       /accounts/{stripe_account}/login-links [post]
func (h *PaymentHandler) CreateLoginLink(c *gin.Context) {
	account, ok := pathID(c, "stripe_account")
	if !ok {
		return
	}
	var req request.LoginLinkRequest
	if !bindOptional(c, &req) {
		return
	}
	writeResult(c, h.gateway.CreateLoginLink(c.Request.Context(), account, strings.TrimSpace(req.RedirectURL)), "")
}

// CreateToken godoc
// @Summary      Share a platform customer's card with a connected account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        stripe_account  path  string                true  "Connected account"
// @Param        body            body  request.TokenRequest  true  "Customer"
// @Success      200  {object}  response.OperationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  response.OperationResponse
// @Router       /accounts/{stripe_account}/tokens [post]
func (h *PaymentHandler) CreateToken(c *gin.Context) {
	account, ok := pathID(c, "stripe_account")
	if !ok {
		return
	}
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	writeResult(c, h.gateway.CreateToken(c.Request.Context(), strings.TrimSpace(req.Customer), account), "")
}

// track records a failed composite in the ledger. Ledger failures are logged
// and never change the response.
func (h *PaymentHandler) track(c *gin.Context, operation, stripeAccount string, outcome entities.Outcome) string {
	if h.ledger == nil || !outcome.HasError() {
		return ""
	}
	rec, recorded, err := h.ledger.Track(c.Request.Context(), operation, stripeAccount, outcome)
	if err != nil {
		logger.Error("reconciliation record failed",
			zap.String("operation", operation),
			zap.String("stripe_account", stripeAccount),
			zap.Error(err),
		)
		return ""
	}
	if !recorded {
		return ""
	}
	return rec.ID
}

func writeResult[T any](c *gin.Context, r entities.Result[T], reconciliationID string) {
	body := response.FromResult(r)
	body.ReconciliationID = reconciliationID
	c.JSON(statusFor(r), body)
}

// statusFor maps an envelope to an HTTP status. Processor errors keep the
// status Stripe answered with.
func statusFor(o entities.Outcome) int {
	if !o.HasError() {
		return http.StatusOK
	}
	err := o.Err()
	switch {
	case errors.Is(err, entities.ErrCustomerDeleted):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrProcessorClientNotConfigured):
		return http.StatusServiceUnavailable
	}
	var se *stripe.Error
	if errors.As(err, &se) && se.HTTPStatusCode >= http.StatusBadRequest {
		return se.HTTPStatusCode
	}
	return http.StatusBadGateway
}

func bindOrder(c *gin.Context, connected bool) (entities.Order, bool) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return entities.Order{}, false
	}
	if connected {
		if err := req.ValidateConnected(); err != nil {
			invalidRequest(c, err)
			return entities.Order{}, false
		}
	}
	return req.ToOrder(), true
}

func bindPaymentAction(c *gin.Context) (entities.Order, bool) {
	var req request.PaymentActionRequest
	if !bindOptional(c, &req) {
		return entities.Order{}, false
	}
	order, err := req.ToOrder(c.Param("payment_intent_id"))
	if err != nil {
		invalidRequest(c, err)
		return entities.Order{}, false
	}
	return order, true
}

// bindOptional accepts an empty body.
func bindOptional(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		invalidRequest(c, err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", name+" is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", false
	}
	return id, true
}

func invalidRequest(c *gin.Context, err error) {
	logger.Warn("invalid request", zap.String("path", c.FullPath()), zap.Error(err))
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
