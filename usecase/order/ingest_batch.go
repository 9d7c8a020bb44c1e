package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/consts"
	"github.com/hfujita/order-ingestion-system/entity"
	"github.com/hfujita/order-ingestion-system/infra/db/model"
)

// UploadOrders runs the full upload path: parser service first, then
// the batch ingestion. A parser failure or an empty result rejects the
// whole upload before any validation happens.
func (u *orderUsecase) UploadOrders(ctx context.Context, content []byte, filename, yearMonth, operator string) (entity.BatchResult, error) {
	if u.locker != nil {
		if !u.locker.TryAcquire(yearMonth) {
			log.Warnf("[OrderUpload] Batch %s already in progress, rejecting %s", yearMonth, filename)
			return entity.BatchResult{}, ErrBatchInProgress
		}
		defer u.locker.Release(yearMonth)
	}

	log.Infof("[OrderUpload] Parsing %s (%d bytes) for batch %s", filename, len(content), yearMonth)

	rows, err := u.parser.Parse(ctx, content, filename)
	if err != nil {
		log.Errorf("[OrderUpload] Parser failed for %s: %v", filename, err)
		return entity.BatchResult{}, &ParseError{Err: err}
	}
	if len(rows) == 0 {
		log.Errorf("[OrderUpload] Parser returned no rows for %s", filename)
		return entity.BatchResult{}, &ParseError{Err: errors.New("no rows in parsed document")}
	}

	return u.IngestBatch(ctx, yearMonth, rows, filename, operator)
}

// IngestBatch validates every row in original order, skipping defective
// ones, then commits all staged rows in a single transaction. Row-level
// tolerance applies only to validation: any store error during the
// commit rolls back the entire batch.
func (u *orderUsecase) IngestBatch(ctx context.Context, yearMonth string, rows []entity.RawRow, fileName, operator string) (entity.BatchResult, error) {
	var result entity.BatchResult
	now := time.Now().Unix()

	staged := make([]model.Order, 0, len(rows))
	for i, row := range rows {
		validated, err := u.validateRow(yearMonth, row, i+1)
		if err != nil {
			result.Skipped++
			result.SkipReasons = append(result.SkipReasons, err.Error())
			continue
		}
		staged = append(staged, orderModel(validated, now, operator))
	}

	log.Infof("[OrderIngest] Batch %s: staged %d of %d rows, skipped %d", yearMonth, len(staged), len(rows), result.Skipped)

	if err := u.commitBatch(staged, yearMonth, fileName, operator, now, &result, len(rows)); err != nil {
		return entity.BatchResult{}, err
	}

	result.Committed = len(staged)
	log.Infof("[OrderIngest] Batch %s committed: %d rows, %d skipped", yearMonth, result.Committed, result.Skipped)
	return result, nil
}

// commitBatch inserts every staged row plus the import log row in one
// transaction. An empty staged set still opens and commits the
// transaction so the zero-row import log is recorded.
func (u *orderUsecase) commitBatch(staged []model.Order, yearMonth, fileName, operator string, now int64, result *entity.BatchResult, totalRows int) error {
	tx := u.db.Begin()
	if tx.Error != nil {
		log.Errorf("[OrderIngest] Failed to open transaction: %v", tx.Error)
		return &CommitError{Err: tx.Error}
	}

	for i := range staged {
		if err := tx.Create(&staged[i]).Error; err != nil {
			tx.Rollback()
			log.Errorf("[OrderIngest] Insert failed at staged row %d, batch rolled back: %v", i+1, err)
			u.recordRolledBackBatch(yearMonth, fileName, operator, now, result, totalRows)
			return &CommitError{Err: err}
		}
	}

	importLog := importLogModel(yearMonth, fileName, operator, now, result, totalRows, len(staged), consts.StatusCommitted)
	if err := tx.Create(&importLog).Error; err != nil {
		tx.Rollback()
		log.Errorf("[OrderIngest] Import log insert failed, batch rolled back: %v", err)
		return &CommitError{Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		log.Errorf("[OrderIngest] Commit failed: %v", err)
		return &CommitError{Err: err}
	}
	return nil
}

// recordRolledBackBatch writes the failure accounting outside the dead
// transaction. Best effort: if the store is down this fails too and is
// only logged.
func (u *orderUsecase) recordRolledBackBatch(yearMonth, fileName, operator string, now int64, result *entity.BatchResult, totalRows int) {
	importLog := importLogModel(yearMonth, fileName, operator, now, result, totalRows, 0, consts.StatusRolledBack)
	if err := u.dao.CreateOrderImportLog(&importLog); err != nil {
		log.Errorf("[OrderIngest] Could not record rolled-back batch %s: %v", yearMonth, err)
	}
}

func orderModel(v entity.ValidatedOrder, now int64, operator string) model.Order {
	return model.Order{
		YearMonth:        v.YearMonth,
		VendorID:         v.VendorID,
		VendorName:       v.VendorName,
		BuildingName:     v.BuildingName,
		Number:           v.Number,
		ReceptionDetails: v.ReceptionDetails,
		PaymentAmount:    v.PaymentAmount,
		CompletionDate:   v.CompletionDate,
		PaymentDate:      v.PaymentDate,
		BillingDate:      v.BillingDate,
		EraseFlag:        v.EraseFlag,
		CreateTime:       now,
		CreateBy:         operator,
		UpdateTime:       now,
		UpdateBy:         operator,
	}
}

func importLogModel(yearMonth, fileName, operator string, now int64, result *entity.BatchResult, totalRows, committedRows, status int) model.OrderImportLog {
	resultJSON, err := json.Marshal(result.SkipReasons)
	if err != nil {
		resultJSON = []byte("[]")
	}

	return model.OrderImportLog{
		YearMonth:    yearMonth,
		FileName:     fileName,
		TotalRow:     int64(totalRows),
		CommittedRow: int64(committedRows),
		SkippedRow:   int64(result.Skipped),
		Status:       status,
		Result:       string(resultJSON),
		CreateTime:   now,
		CreateBy:     operator,
	}
}
