package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/handler"
	"github.com/hfujita/order-ingestion-system/infra/db/dao"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
	"github.com/hfujita/order-ingestion-system/infra/locker"
	"github.com/hfujita/order-ingestion-system/infra/parser"
	"github.com/hfujita/order-ingestion-system/middlewares"
	orderUsecase "github.com/hfujita/order-ingestion-system/usecase/order"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(dbHost, dbPort, dbUser, dbName, dbPassword, parserURL string) {
	var err error
	dbURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", dbHost, dbPort, dbUser, dbName, dbPassword)

	a.DB, err = gorm.Open("postgres", dbURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", dbName, err)
	}
	log.Infof("Connected to database %s", dbName)

	a.DB.AutoMigrate(
		&model.Order{},
		&model.OrderImportLog{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes(parserURL)
}

func (a *App) initializeRoutes(parserURL string) {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	parserClient := parser.NewClient(parserURL)
	uc := orderUsecase.NewOrderUsecase(a.DB, dao.NewDaoMethod(a.DB), parserClient, locker.New(), false)
	h := handler.NewOrderHandler(uc)
	RegisterOrderRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Infof("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
