package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	_ "gestao_projetos/docs" // This will be auto-generated
	"gestao_projetos/internal/adapter/http/handlers"
	"gestao_projetos/internal/adapter/http/middleware"
	"gestao_projetos/internal/adapter/persistence/repository"
	"gestao_projetos/internal/infrastructure/database"
	"gestao_projetos/internal/infrastructure/payments"
	"gestao_projetos/internal/store"
	"gestao_projetos/internal/usecase"
	"gestao_projetos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	collections := repository.NewCollectionDynamoRepository(ddb)

	entityStore := store.NewStore(collections)
	entityStore.Load(context.Background())

	var receiptGateway interfaces.IReceiptGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago receipt gateway not configured: %v", err)
	} else {
		receiptGateway = mpGateway
	}

	registryUseCase := usecase.NewRegistryUseCase(entityStore)
	allocationUseCase := usecase.NewAllocationUseCase(entityStore)
	billingUseCase := usecase.NewBillingUseCase(entityStore, receiptGateway)
	reportUseCase := usecase.NewReportUseCase(entityStore)

	registryHandler := handlers.NewRegistryHandler(registryUseCase)
	allocationHandler := handlers.NewAllocationHandler(allocationUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, registryHandler)
	addBillingRoutes(v1, allocationHandler, billingHandler, reportHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
