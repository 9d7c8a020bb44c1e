package order

import (
	"strings"
	"time"

	"github.com/hfujita/order-ingestion-system/consts"
)

// Date forms seen in source documents. The parser service passes cell
// values through untouched, so both separators and the Japanese form
// show up here.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"20060102",
	"2006年1月2日",
}

// normalizeDate reduces a raw date-like string to a calendar date at
// midnight UTC. The far-future sentinel meaning "not yet determined"
// comes back as nil with no error; anything unparseable is a
// DateFormatError.
func normalizeDate(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &DateFormatError{Value: raw}
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if date.Format("2006-01-02") == consts.UndeterminedDate {
			return nil, nil
		}
		return &date, nil
	}

	return nil, &DateFormatError{Value: raw}
}
