package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/controllers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using environment as-is")
	}

	app := controllers.App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("PARSER_URL"))

	app.RunServer()
}
