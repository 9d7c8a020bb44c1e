package dao

import (
	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	SearchOrders(filter entity.OrderSearchFilter, limit, offset int) ([]model.Order, int64, error)
	CreateOrderImportLog(payload *model.OrderImportLog) error
	GetOrderImportLogs() ([]model.OrderImportLog, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
