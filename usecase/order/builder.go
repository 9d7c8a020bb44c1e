package order

import (
	"context"

	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/dao"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
	"github.com/hfujita/order-ingestion-system/infra/locker"

	"github.com/jinzhu/gorm"
)

// Parser turns uploaded file bytes into raw order rows. Implemented by
// infra/parser against the document parsing service; tests inject a
// fake.
type Parser interface {
	Parse(ctx context.Context, content []byte, filename string) ([]entity.RawRow, error)
}

type OrderUsecase interface {
	UploadOrders(ctx context.Context, content []byte, filename, yearMonth, operator string) (entity.BatchResult, error)
	IngestBatch(ctx context.Context, yearMonth string, rows []entity.RawRow, fileName, operator string) (entity.BatchResult, error)
	SearchOrders(ctx context.Context, filter entity.OrderSearchFilter, page, perPage int) ([]model.Order, int64, error)
	GetImportLogs(ctx context.Context) ([]model.OrderImportLog, error)
}

type orderUsecase struct {
	db     *gorm.DB
	dao    dao.DaoMethod
	parser Parser
	locker *locker.Locker

	// collectAllDefects makes row validation report every defect of a
	// row instead of stopping at the first one.
	collectAllDefects bool
}

func NewOrderUsecase(db *gorm.DB, d dao.DaoMethod, p Parser, lk *locker.Locker, collectAllDefects bool) OrderUsecase {
	return &orderUsecase{
		db:                db,
		dao:               d,
		parser:            p,
		locker:            lk,
		collectAllDefects: collectAllDefects,
	}
}
