package dao

import (
	"fmt"

	"github.com/hfujita/order-ingestion-system/infra/db/model"
)

func (d *dao) CreateOrderImportLog(payload *model.OrderImportLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save import log: %w", err)
	}
	return nil
}

func (d *dao) GetOrderImportLogs() ([]model.OrderImportLog, error) {
	var logs []model.OrderImportLog
	if err := d.db.
		Order("create_time DESC").
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch import logs: %w", err)
	}
	return logs, nil
}
