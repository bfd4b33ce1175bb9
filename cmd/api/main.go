package main

import (
	"rentora/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Rentora API
// @version         1.0
// @description     Rental property management backend (properties, tenants, contracts, payments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
