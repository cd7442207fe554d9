package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"catalog/condb"
	"catalog/routes"
	"catalog/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using the environment as-is")
	}

	cfg := condb.LoadConfig()
	pools, err := condb.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal("connection pools: ", err)
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		adminToken = "token"
		log.Println("WARN: ADMIN_TOKEN not set, using the default token")
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	allow := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(allow) == "" {
		// ค่า default สำหรับ dev
		allow = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allow, // คั่นด้วย comma
		AllowMethods: "GET,POST,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Admin-Token",
	}))

	routes.RegisterRoutes(app, store.NewPG(pools), adminToken)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(cfg.CloseTimeout); err != nil {
		log.Println("http shutdown:", err)
	}
	pools.Close()
	log.Println("pools closed")
}
