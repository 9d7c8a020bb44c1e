package dao

import (
	"fmt"

	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
)

// SearchOrders applies the optional substring filters conjunctively and
// returns one page of orders, most recently created first, plus the
// total match count for pagination.
func (d *dao) SearchOrders(filter entity.OrderSearchFilter, limit, offset int) ([]model.Order, int64, error) {
	query := d.db.Model(&model.Order{})

	if filter.YearMonth != "" {
		query = query.Where("year_month LIKE ?", "%"+filter.YearMonth+"%")
	}
	if filter.VendorName != "" {
		query = query.Where("vendor_name LIKE ?", "%"+filter.VendorName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []model.Order
	if err := query.
		Order("create_time DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
