package controllers

import (
	"github.com/hfujita/order-ingestion-system/handler"

	"github.com/gorilla/mux"
)

func RegisterOrderRoutes(router *mux.Router, h *handler.OrderHandler) {
	router.HandleFunc("/orders/upload", h.UploadOrders).Methods("POST")
	router.HandleFunc("/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/import_logs", h.GetImportLogs).Methods("GET")
}
