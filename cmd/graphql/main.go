// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	graphqlApi "mobilia.GO/api/graphql"
	"mobilia.GO/config"
)

func main() {
	_ = godotenv.Load()

	db, err := config.NewDB()
	if err != nil {
		log.Fatal("db:", err)
	}

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, db)

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "rectangles"}
	fig := figure.NewFigure("Mobilia GQL ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
