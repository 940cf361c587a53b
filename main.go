package main

import (
	"log"

	"PGRegistry/cache"
	"PGRegistry/config"
	"PGRegistry/db"
	"PGRegistry/jobs"
	"PGRegistry/logger"
	"PGRegistry/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	if !isTest {
		if err := db.Init(cfg); err != nil {
			log.Fatal("Failed to connect to MongoDB: ", err)
		}
		if err := cache.Init(cfg); err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		jobs.SeedAddressReference()
		jobs.StartDailyScheduler()
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	if isTest {
		return
	}
	if err := startServer(r, cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
