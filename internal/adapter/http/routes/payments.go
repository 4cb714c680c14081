package routes

import (
	"payment_orchestrator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCards          = "/cards"
	PathOrders         = "/orders"
	PathPayments       = "/payments"
	PathPaymentMethods = "/payment-methods"
	PathSetupIntents   = "/setup-intents"
	PathAccounts       = "/accounts"
	PathReconciliation = "/reconciliation"
	PathPing           = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	cards := rg.Group(PathCards)
	{
		cards.POST("", h.AttachCard)
		cards.POST("/attach", h.AttachCardToCustomer)
		cards.DELETE("/:card_id", h.RemoveCard)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("/pay", h.PayOrder)
		orders.POST("/register", h.RegisterOrder)
		orders.POST("/refund", h.RefundOrder)
		orders.GET("/:order_id/status", h.GetOrderStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.CreatePayment)
		payments.POST("/:payment_intent_id/cancel", h.CancelPayment)
		payments.POST("/:payment_intent_id/capture", h.CapturePayment)
	}

	rg.GET(PathPaymentMethods+"/:payment_method_id", h.GetPaymentMethod)
	rg.GET(PathSetupIntents+"/:setup_intent_id", h.GetSetupIntent)

	accounts := rg.Group(PathAccounts + "/:stripe_account")
	{
		accounts.POST("/login-links", h.CreateLoginLink)
		accounts.POST("/tokens", h.CreateToken)
	}
}

func addReconciliationRoutes(rg *gin.RouterGroup, h *handlers.ReconciliationHandler) {
	ledger := rg.Group(PathReconciliation)
	{
		ledger.GET("", h.ListRecords)
		ledger.GET("/:id", h.GetRecord)
	}
}
