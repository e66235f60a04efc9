package routes

import (
	"portalubs/constants"
	"portalubs/controllers"
	middlewares "portalubs/middleware"
	"portalubs/services"
	"portalubs/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "portalubs/docs"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	store := services.NewGormCheckStore(db)
	notificador := services.NewMelodyNotificador(m)
	lg := logger.NewDefaultLogger(logger.InfoLevel)

	checkService := services.NewCheckService(services.CheckServiceOptions{
		Store:       store,
		Logger:      lg,
		Notificador: notificador,
	})
	correcaoService := services.NewCorrecaoService(services.CorrecaoServiceOptions{
		Store:       store,
		Logger:      lg,
		Notificador: notificador,
	})
	historyService := services.NewHistoryService(services.HistoryServiceOptions{
		Store:  store,
		Postos: store,
		Logger: lg,
	})
	pdfService := services.NewPDFService(services.PDFServiceOptions{
		DB:     db,
		Cld:    cld,
		Logger: lg,
	})

	pdfController := controllers.NewPDFController(pdfService, checkService)
	checkController := controllers.NewCheckController(checkService, historyService)
	correcaoController := controllers.NewCorrecaoController(correcaoService)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	// Portal público
	v1.GET("/postos", controllers.GetPostos)
	v1.GET("/postos/busca", controllers.SearchPostos)
	v1.GET("/postos/:id", controllers.GetPostoDetail)
	v1.GET("/postos/:id/pdf", pdfController.GetPDF)

	// Administração de postos
	v1.POST("/postos", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreatePosto)
	v1.PUT("/postosUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdatePosto)
	v1.DELETE("/postos/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeletePosto)

	// Administração de usuários e vínculos
	v1.GET("/usuarios", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetUsers)
	v1.POST("/usuarios", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateUser)
	v1.GET("/usuarios/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetUserByID)
	v1.PUT("/usuarios", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateUser)
	v1.DELETE("/usuarios/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteUser)
	v1.PUT("/usuarios/vinculo", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ToggleVinculo)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	// Upload do PDF e check diário
	v1.POST("/postos/:id/pdf", middlewares.AuthMiddleware(constants.RoleResponsavel, constants.RoleAdmin), pdfController.UploadPDF)
	v1.GET("/checks", middlewares.AuthMiddleware(constants.RoleResponsavel, constants.RoleAdmin), checkController.GetChecksHoje)
	v1.GET("/checksHistory", middlewares.AuthMiddleware(constants.RoleAdmin), checkController.GetHistorico)

	// Fluxo de correção
	v1.POST("/correcoes", middlewares.AuthMiddleware(constants.RoleResponsavel), correcaoController.SolicitarCorrecao)
	v1.GET("/correcoes/pendentes", middlewares.AuthMiddleware(constants.RoleAdmin), correcaoController.GetCorrecoesPendentes)
	v1.PUT("/correcoes/decidir", middlewares.AuthMiddleware(constants.RoleAdmin), correcaoController.DecidirCorrecao)
	v1.GET("/correcoes/aprovadas", middlewares.AuthMiddleware(constants.RoleResponsavel), correcaoController.GetCorrecoesAprovadas)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
