package routes

import (
	_ "payment_orchestrator/docs" // This will be auto-generated
	"payment_orchestrator/internal/adapter/http/handlers"
	"payment_orchestrator/internal/adapter/persistence/repository"
	"payment_orchestrator/internal/infrastructure/database"
	"payment_orchestrator/internal/infrastructure/logger"
	"payment_orchestrator/internal/infrastructure/payments"
	"payment_orchestrator/internal/usecase"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	logger.InitLogger()
	defer func() { _ = logger.Sync() }()

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	logger.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(router *gin.Engine) {
	stripeClient, err := payments.NewStripeClient(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		logger.Fatal("stripe client not configured", zap.Error(err))
	}

	settings := database.SettingsFromEnv()
	ddb := database.ConnectDynamoDB(settings)
	ledgerRepo := repository.NewOrphanRecordDynamoRepository(ddb, settings.ReconciliationTable)

	gateway := usecase.NewStripeGateway(stripeClient, logger.Log)
	ledger := usecase.NewOrphanRecordUseCase(ledgerRepo, logger.Log)

	registerRoutes(router, handlers.NewPaymentHandler(gateway, ledger), handlers.NewReconciliationHandler(ledger))
}

func registerRoutes(router *gin.Engine, paymentHandler *handlers.PaymentHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addReconciliationRoutes(v1, reconciliationHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
