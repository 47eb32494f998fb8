package main

import (
	"fmt"
	"log"

	"github.com/Dibyashritarout/ByteBites-main/configs"
	"github.com/Dibyashritarout/ByteBites-main/middlewares"
	"github.com/Dibyashritarout/ByteBites-main/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// seed catalog + demo user
	if err := configs.SeedCatalog(cfg.SeedFile); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedDemoUser(); err != nil {
		log.Fatalf("seed demo user failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
