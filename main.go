package main

import (
	"fmt"

	"github.com/Hsharma41126/new-restorant/configs"
	"github.com/Hsharma41126/new-restorant/middlewares"
	"github.com/Hsharma41126/new-restorant/routes"
	"github.com/Hsharma41126/new-restorant/ws"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedReferenceData(); err != nil {
		log.Fatalf("seed reference data failed: %v", err)
	}

	// Kitchen display feed
	hub := ws.NewKitchenHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
