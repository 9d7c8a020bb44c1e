package order

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hfujita/order-ingestion-system/consts"
	"github.com/hfujita/order-ingestion-system/entity"
)

// validateRow checks one raw row and returns its normalized form, or a
// fieldError citing the 1-based rowIndex and the offending field. By
// default the first defect ends the row; with collectAllDefects every
// defect is gathered into one message.
func (u *orderUsecase) validateRow(yearMonth string, row entity.RawRow, rowIndex int) (entity.ValidatedOrder, error) {
	validated := entity.ValidatedOrder{
		YearMonth: yearMonth,
		EraseFlag: false,
	}
	ferr := &fieldError{rowIndex: rowIndex}

	checks := []func() string{
		func() string {
			vendorID, err := intField(row, consts.FieldVendorID)
			if err != nil || vendorID <= 0 {
				return consts.FieldVendorID + "が不正です"
			}
			validated.VendorID = vendorID
			return ""
		},
		func() string {
			name, err := textField(row, consts.FieldVendorName)
			if err != nil {
				return consts.FieldVendorName + "が不正です"
			}
			validated.VendorName = name
			return ""
		},
		func() string {
			name, err := textField(row, consts.FieldBuildingName)
			if err != nil {
				return consts.FieldBuildingName + "が不正です"
			}
			validated.BuildingName = name
			return ""
		},
		func() string {
			number, err := intField(row, consts.FieldNumber)
			if err != nil || number < 0 {
				return consts.FieldNumber + "が不正です"
			}
			validated.Number = number
			return ""
		},
		func() string {
			details, err := textField(row, consts.FieldReceptionDetails)
			if err != nil {
				return consts.FieldReceptionDetails + "が不正です"
			}
			validated.ReceptionDetails = details
			return ""
		},
		func() string {
			amount, err := intField(row, consts.FieldPaymentAmount)
			if err != nil {
				return consts.FieldPaymentAmount + "が不正です"
			}
			validated.PaymentAmount = amount
			return ""
		},
		func() string {
			date, err := dateField(row, consts.FieldCompletionDate)
			if err != nil {
				return consts.FieldCompletionDate + "の日付形式が不正です"
			}
			validated.CompletionDate = date
			return ""
		},
		func() string {
			date, err := dateField(row, consts.FieldPaymentDate)
			if err != nil {
				return consts.FieldPaymentDate + "の日付形式が不正です"
			}
			validated.PaymentDate = date
			return ""
		},
		func() string {
			date, err := dateField(row, consts.FieldBillingDate)
			if err != nil {
				return consts.FieldBillingDate + "の日付形式が不正です"
			}
			validated.BillingDate = date
			return ""
		},
	}

	for _, check := range checks {
		reason := check()
		if reason == "" {
			continue
		}
		ferr.reasons = append(ferr.reasons, reason)
		if !u.collectAllDefects {
			return entity.ValidatedOrder{}, ferr
		}
	}

	if len(ferr.reasons) > 0 {
		return entity.ValidatedOrder{}, ferr
	}
	return validated, nil
}

// intField coerces a raw value to an integer. The parser service emits
// strings for CSV cells and JSON numbers for spreadsheet cells.
func intField(row entity.RawRow, label string) (int64, error) {
	raw, ok := row[label]
	if !ok || raw == nil {
		return 0, errors.New("missing field")
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, errors.New("empty field")
		}
		return strconv.ParseInt(trimmed, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func textField(row entity.RawRow, label string) (string, error) {
	raw, ok := row[label]
	if !ok || raw == nil {
		return "", errors.New("missing field")
	}

	text, ok := raw.(string)
	if !ok {
		text = fmt.Sprintf("%v", raw)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty field")
	}
	return text, nil
}

func dateField(row entity.RawRow, label string) (*time.Time, error) {
	text, err := textField(row, label)
	if err != nil {
		return nil, err
	}
	return normalizeDate(text)
}
