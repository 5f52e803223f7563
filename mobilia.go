//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mobilia.GO/api"
	_ "mobilia.GO/api/auth"
	_ "mobilia.GO/api/cart"
	_ "mobilia.GO/api/catalog"
	_ "mobilia.GO/api/checkout"
	_ "mobilia.GO/api/graphql"
	_ "mobilia.GO/api/media"
	coreAuth "mobilia.GO/core/auth"

	"mobilia.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	config.InitRedis()
	redisStatus := "Redis not configured, response caching uses in-process cache only."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, falling back to in-process cache."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(coreAuth.Middleware(db))

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
