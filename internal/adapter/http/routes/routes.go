package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"rentora/internal/adapter/http/handlers"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/adapter/persistence/repository"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/infrastructure/database"
	"rentora/internal/infrastructure/logger"
	"rentora/internal/infrastructure/storage"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const defaultPort = 8080

// Run wires the full stack and starts the server.
func Run() {
	zlog, err := logger.Init("rentora")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	fileStorage := storage.NewS3FileStorage(context.Background())
	clock := interfaces.SystemClock{}

	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	tenantRepo := repository.NewTenantDynamoRepository(ddb)
	contractRepo := repository.NewContractDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	txm := repository.NewDynamoTransactionManager(ddb)

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, tenantRepo, contractRepo, paymentRepo, txm, clock)
	tenantUseCase := usecase.NewTenantUseCase(tenantRepo, propertyRepo, contractRepo, paymentRepo, txm, clock)
	contractUseCase := usecase.NewContractUseCase(contractRepo, tenantRepo, propertyRepo, txm, clock)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, tenantRepo, propertyRepo, clock)
	dashboardUseCase := usecase.NewDashboardUseCase(paymentRepo, contractRepo, propertyRepo, clock)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase, fileStorage)
	tenantHandler := handlers.NewTenantHandler(tenantUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase, fileStorage)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, clock)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, clock)

	jwtUtil := auth.NewJWTUtil(&auth.JWTConfig{
		SigningKey:      os.Getenv("JWT_SIGNING_KEY"),
		ExpirationHours: 24,
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("", middleware.Auth(jwtUtil))
	addRentalRoutes(secured, propertyHandler, tenantHandler, contractHandler, paymentHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorw("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
