package main

import (
	"log"
	"net/http"
	"os"

	"portalubs/config"
	"portalubs/jobs"
	"portalubs/models"
	"portalubs/routes"
	"portalubs/services"
	"portalubs/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Posto{},
		&models.User{},
		&models.UsuarioPosto{},
		&models.ArquivoPDF{},
		&models.UpdateCheck{},
		&models.CorrecaoPDF{},
	); err != nil {
		log.Fatalf("Falha ao migrar as tabelas: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: não foi possível carregar o .env, usando as variáveis de ambiente existentes: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Falha ao inicializar a aplicação: %v", err)
	}

	migrateTables()

	// Serviço de checks usado pelo job de limpeza diária
	checkService := services.NewCheckService(services.CheckServiceOptions{
		Store:  services.NewGormCheckStore(config.DB),
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetLimpadorChecks(checkService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Falha ao inicializar os cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Servidor iniciando na porta " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Falha ao iniciar o servidor: %v", err)
	}
}
