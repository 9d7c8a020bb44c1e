package order

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/consts"
	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
	"github.com/hfujita/order-ingestion-system/utils"
)

// SearchOrders returns one page of committed orders matching the
// filters, most recently created first, plus the total match count.
func (u *orderUsecase) SearchOrders(ctx context.Context, filter entity.OrderSearchFilter, page, perPage int) ([]model.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = consts.DefaultPageSize
	}
	perPage = utils.Min(perPage, consts.MaxPageSize)

	orders, total, err := u.dao.SearchOrders(filter, perPage, (page-1)*perPage)
	if err != nil {
		log.Errorf("[OrderSearch] Query failed (year_month=%q vendor_name=%q): %v", filter.YearMonth, filter.VendorName, err)
		return nil, 0, err
	}

	return orders, total, nil
}

func (u *orderUsecase) GetImportLogs(ctx context.Context) ([]model.OrderImportLog, error) {
	return u.dao.GetOrderImportLogs()
}
