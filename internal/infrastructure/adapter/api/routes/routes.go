package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("", userHandler.GetUserByQuery)
		userRoutes.GET("/current-balance", userHandler.GetBalance)
		userRoutes.GET("/:userId", userHandler.GetUser)
	}

	transactionRoutes := router.Group("/transactions")
	{
		transactionRoutes.POST("", transactionHandler.PostTransaction)
		transactionRoutes.GET("", transactionHandler.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// Request ID first so recovery and request logs can carry it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins...))
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, timeProvider, allowedOrigins)
	SetupRoutes(router, userHandler, transactionHandler, healthHandler)
	return router
}
